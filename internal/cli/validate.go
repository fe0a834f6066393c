package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clawlint/clawlint/internal/report"
	"github.com/clawlint/clawlint/internal/ui"
)

var (
	validateJSON    bool
	validateQuiet   bool
	validateVerbose bool
	validateNoColor bool
	validateOnly    string
)

var validateCmd = &cobra.Command{
	Use:   "validate [root]",
	Short: "Validate a plugin tree",
	Long: `Validate runs the full audit pipeline over a plugin tree: manifest
schema and path checks, skill, agent, and command component checks, and
the hookify enforcement-keyword policy. The root defaults to the
current directory.

The command exits 1 when any check reports an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	flags := validateCmd.Flags()
	flags.BoolVar(&validateJSON, "json", false, "emit a JSON summary instead of text")
	flags.BoolVarP(&validateQuiet, "quiet", "q", false, "suppress passed checks and progress output")
	flags.BoolVarP(&validateVerbose, "verbose", "v", false, "enable debug logging on stderr")
	flags.BoolVar(&validateNoColor, "no-color", false, "disable terminal styling")
	flags.StringVar(&validateOnly, "only", "", "run a single phase: manifest, skills, agents, commands, or hookify")
}

func runValidate(cmd *cobra.Command, args []string) error {
	res, err := executeValidate(cmd, args)
	if err != nil {
		return err
	}
	if res.HasErrors() {
		os.Exit(1)
	}
	return nil
}

// executeValidate runs the pipeline and writes the report. Split from
// runValidate so tests can observe the aggregated result without the
// process exit.
func executeValidate(cmd *cobra.Command, args []string) (*report.Result, error) {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	if validateVerbose {
		deps.EnableVerbose()
	}
	if err := deps.EnsureLint(root); err != nil {
		return nil, err
	}

	noColor := validateNoColor || deps.Config.Output.NoColor || deps.Detector.Headless()
	asJSON := validateJSON || deps.Config.Output.Format == "json"

	var sp ui.Spinner
	if !validateQuiet && !asJSON {
		sp = ui.NewSpinner("loading plugin tree", deps.Detector, noColor, cmd.OutOrStdout())
	}
	stopSpinner := func() {
		if sp != nil {
			sp.Stop()
			sp = nil
		}
	}
	defer stopSpinner()

	fsys := os.DirFS(root)
	snap, err := deps.Loader.Load(cmd.Context(), fsys)
	if err != nil {
		return nil, fmt.Errorf("load tree: %w", err)
	}

	phases := []struct {
		name string
		run  func() *report.Result
	}{
		{"manifest", func() *report.Result { return deps.Manifest.Validate(fsys) }},
		{"skills", func() *report.Result { return deps.Components.ValidateSkills(snap) }},
		{"agents", func() *report.Result { return deps.Components.ValidateAgents(snap) }},
		{"commands", func() *report.Result { return deps.Components.ValidateCommands(snap) }},
		{"hookify", func() *report.Result { return deps.Hookify.CheckHookify(snap) }},
	}

	var results []*report.Result
	for _, phase := range phases {
		if validateOnly != "" && phase.name != validateOnly {
			continue
		}
		if sp != nil {
			sp.SetTitle("checking " + phase.name)
		}
		results = append(results, phase.run())
	}
	stopSpinner()

	if len(results) == 0 {
		return nil, fmt.Errorf("unknown phase %q (expected manifest, skills, agents, commands, or hookify)", validateOnly)
	}

	res := report.Aggregate(results...)
	out := cmd.OutOrStdout()

	if asJSON {
		summary := report.NewSummary(root, res)
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode summary: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(data))
		return res, nil
	}

	display := res
	if validateQuiet {
		display = &report.Result{Errors: res.Errors, Warnings: res.Warnings, Absent: res.Absent}
	}
	renderer := report.NewRenderer(noColor)
	_, _ = fmt.Fprint(out, renderer.Render(root, display))
	return res, nil
}
