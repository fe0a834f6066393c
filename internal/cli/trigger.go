package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clawlint/clawlint/internal/trigger"
)

var (
	triggerRulesPath string
	triggerJSON      bool
)

var triggerCmd = &cobra.Command{
	Use:   "trigger [utterance]",
	Short: "Match a prompt against the trigger rule set",
	Long: `Trigger matches a free-text utterance against the skill trigger
rules and prints the relevant skills as a suggestion banner.

The utterance comes from the arguments, or, when absent, from a JSON
{"prompt": ...} document on stdin (the hook invocation mode). Following
the hook contract, an empty prompt or a missing rule file produces no
output and a zero exit.`,
	Args: cobra.ArbitraryArgs,
	RunE: runTrigger,
}

func init() {
	rootCmd.AddCommand(triggerCmd)

	flags := triggerCmd.Flags()
	flags.StringVar(&triggerRulesPath, "rules", "", "path to the trigger rule file (default from configuration)")
	flags.BoolVar(&triggerJSON, "json", false, "emit the match as JSON instead of a banner")
}

func runTrigger(cmd *cobra.Command, args []string) error {
	if err := deps.EnsureLint("."); err != nil {
		return err
	}

	utterance := strings.TrimSpace(strings.Join(args, " "))
	if utterance == "" {
		prompt, err := trigger.ReadPrompt(cmd.InOrStdin())
		if err != nil {
			if errors.Is(err, trigger.ErrEmptyPrompt) {
				return nil
			}
			return err
		}
		utterance = prompt
	}

	rulesPath := triggerRulesPath
	if rulesPath == "" {
		rulesPath = deps.Config.Trigger.RulesPath
	}
	data, err := os.ReadFile(rulesPath)
	if err != nil {
		// No rule file means nothing to suggest.
		deps.Logger.Debug("trigger rules unavailable", "path", rulesPath, "error", err)
		return nil
	}
	rs, err := trigger.ParseRules(data)
	if err != nil {
		deps.Logger.Debug("trigger rules unusable", "path", rulesPath, "error", err)
		return nil
	}

	match := trigger.MatchPrompt(utterance, rs)
	out := cmd.OutOrStdout()

	if triggerJSON {
		encoded, err := json.MarshalIndent(match, "", "  ")
		if err != nil {
			return fmt.Errorf("encode match: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(encoded))
		return nil
	}

	if len(match.Capabilities) == 0 {
		return nil
	}
	_, _ = fmt.Fprint(out, renderTriggerBanner(match, deps.Config.Trigger.MaxSuggestions))
	return nil
}

// priorityIcon maps a rule priority to its banner marker.
func priorityIcon(priority string) string {
	switch priority {
	case trigger.PriorityHigh:
		return "⚡"
	case trigger.PriorityMedium:
		return "💡"
	case trigger.PriorityLow:
		return "📌"
	default:
		return "•"
	}
}

const bannerRule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// renderTriggerBanner formats a match as the suggestion banner printed
// into the conversation: capped rule lines with priority icons, the
// complexity tier uppercased, wrapped in horizontal rules.
func renderTriggerBanner(match trigger.Match, maxSuggestions int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(bannerRule + "\n")
	b.WriteString("📚 RECOMMENDED SKILLS\n")
	b.WriteString(bannerRule + "\n")

	if match.Complexity != "" {
		fmt.Fprintf(&b, "Complexity: %s\n\n", strings.ToUpper(match.Complexity))
	}

	capped := match.Capabilities
	if maxSuggestions > 0 && len(capped) > maxSuggestions {
		capped = capped[:maxSuggestions]
	}
	for _, c := range capped {
		fmt.Fprintf(&b, "  %s %s\n", priorityIcon(c.Priority), c.Name)
	}

	b.WriteString("\n")
	b.WriteString("Use: Skill(\"{name}\") to load\n")
	b.WriteString(bannerRule + "\n")
	b.WriteString("\n")
	return b.String()
}
