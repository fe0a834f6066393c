package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clawlint/clawlint/internal/trigger"
)

var rulesPath string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the loaded trigger rules",
	Long: `Rules loads the trigger rule file and lists each rule with its
priority and trigger counts, followed by the complexity tiers.`,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().StringVar(&rulesPath, "rules", "", "path to the trigger rule file (default from configuration)")
}

func runRules(cmd *cobra.Command, _ []string) error {
	if err := deps.EnsureLint("."); err != nil {
		return err
	}

	path := rulesPath
	if path == "" {
		path = deps.Config.Trigger.RulesPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rule file: %w", err)
	}
	rs, err := trigger.ParseRules(data)
	if err != nil {
		return fmt.Errorf("parse rule file: %w", err)
	}

	out := cmd.OutOrStdout()

	pairs := make([]kvPair, 0, len(rs.Rules))
	for _, rule := range rs.Rules {
		detail := fmt.Sprintf("%-8s %d keywords, %d patterns",
			rule.Priority, len(rule.Keywords), len(rule.Patterns))
		pairs = append(pairs, kvPair{rule.Name, detail})
	}
	_, _ = fmt.Fprintln(out, renderCard(fmt.Sprintf("Trigger Rules (%d)", len(rs.Rules)), renderKeyValueLines(pairs)))

	if len(rs.Tiers) > 0 {
		tierPairs := make([]kvPair, 0, len(rs.Tiers))
		for _, tier := range rs.Tiers {
			detail := fmt.Sprintf("%d keywords", len(tier.Keywords))
			if len(tier.AutoSkills) > 0 {
				detail += ", auto: " + strings.Join(tier.AutoSkills, ", ")
			}
			tierPairs = append(tierPairs, kvPair{tier.Name, detail})
		}
		_, _ = fmt.Fprintln(out, renderCard("Complexity Tiers", renderKeyValueLines(tierPairs)))
	}
	return nil
}
