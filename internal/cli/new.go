package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clawlint/clawlint/internal/cli/wizard"
	"github.com/clawlint/clawlint/internal/scaffold"
)

var (
	newKind        string
	newName        string
	newDescription string
	newSkillType   string
	newRoot        string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new skill, agent, or command",
	Long: `New writes a stub component into the plugin tree. With a terminal
attached it runs an interactive wizard; the flags cover headless use.`,
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	flags := newCmd.Flags()
	flags.StringVar(&newKind, "kind", "", "component kind: skill, agent, or command")
	flags.StringVar(&newName, "name", "", "component name (kebab-case)")
	flags.StringVar(&newDescription, "description", "", "one-line component description")
	flags.StringVar(&newSkillType, "type", "", "skill type: knowledge, hybrid, tool, or expert")
	flags.StringVar(&newRoot, "root", ".", "plugin tree root to write into")
}

func runNew(cmd *cobra.Command, _ []string) error {
	req := scaffold.Request{
		Kind:        newKind,
		Name:        newName,
		Description: newDescription,
		SkillType:   newSkillType,
	}

	if req.Kind == "" || req.Name == "" {
		if deps.Detector.Headless() {
			return fmt.Errorf("--kind and --name are required without a terminal")
		}
		answers, err := wizard.Run()
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				return nil
			}
			return err
		}
		req = scaffold.Request{
			Kind:        answers.Kind,
			Name:        answers.Name,
			Description: answers.Description,
			SkillType:   answers.SkillType,
		}
	}

	created, err := deps.Scaffolder.Create(cmd.Context(), newRoot, req)
	if err != nil {
		return err
	}

	body := ""
	for i, path := range created {
		if i > 0 {
			body += "\n"
		}
		body += path
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderCard("Created "+req.Kind+" "+req.Name, body))
	return nil
}
