package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clawlint/clawlint/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "clawlint",
	Short: "clawlint: validator and trigger matcher for Claude plugin trees",
	Long: `clawlint audits a Claude-style plugin tree: it validates the
marketplace manifest, the skill, agent, and command components, and the
hooks file, and it matches free-text prompts against a trigger rule set
to suggest relevant skills.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("clawlint %s\n", version.GetVersion()))
}
