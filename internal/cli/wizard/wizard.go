// Package wizard implements the interactive question flow behind
// "clawlint new": component kind, name, description, and skill type.
package wizard

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/clawlint/clawlint/internal/scaffold"
)

// ErrCancelled reports that the user aborted the wizard.
var ErrCancelled = errors.New("wizard: cancelled")

// Answers carries the collected wizard responses.
type Answers struct {
	Kind        string
	Name        string
	Description string
	SkillType   string
}

var kebabExpr = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Run executes the scaffolding question flow and returns the answers.
func Run() (*Answers, error) {
	a := &Answers{
		Kind:      scaffold.KindSkill,
		SkillType: scaffold.SkillKnowledge,
	}

	kindGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Component kind").
			Options(
				huh.NewOption("Skill - reusable capability with its own directory", scaffold.KindSkill),
				huh.NewOption("Agent - delegated persona document", scaffold.KindAgent),
				huh.NewOption("Command - slash command document", scaffold.KindCommand),
			).
			Value(&a.Kind),
	)

	nameGroup := huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Description("kebab-case, e.g. pdf-tools").
			Validate(func(v string) error {
				if !kebabExpr.MatchString(v) {
					return errors.New("name must be kebab-case (lowercase words joined by hyphens)")
				}
				return nil
			}).
			Value(&a.Name),
	)

	descGroup := huh.NewGroup(
		huh.NewInput().
			Title("Description").
			Description("one sentence; shown in the component's metadata block").
			Value(&a.Description),
	)

	typeOptions := make([]huh.Option[string], 0, len(scaffold.SkillTypeNames()))
	for _, name := range scaffold.SkillTypeNames() {
		typeOptions = append(typeOptions, huh.NewOption(name, name))
	}
	typeGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Skill type").
			Description("decides the default tool list and support directories").
			Options(typeOptions...).
			Value(&a.SkillType),
	).WithHideFunc(func() bool {
		return a.Kind != scaffold.KindSkill
	})

	form := huh.NewForm(kindGroup, nameGroup, descGroup, typeGroup).
		WithTheme(newTheme()).
		WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("wizard error: %w", err)
	}
	return a, nil
}

// newTheme builds the clawlint wizard theme on top of huh.ThemeBase.
func newTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#F97316"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
