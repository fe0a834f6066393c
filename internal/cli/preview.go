package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/clawlint/clawlint/internal/frontmatter"
)

var previewNoColor bool

var previewCmd = &cobra.Command{
	Use:   "preview <component-path>",
	Short: "Render a component document in the terminal",
	Long: `Preview reads a skill, agent, or command document, shows its
metadata block as a summary card, and renders the markdown body for the
terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().BoolVar(&previewNoColor, "no-color", false, "disable terminal styling")
}

// metadataKeys are the block keys surfaced in the summary card, in
// display order.
var metadataKeys = []string{"name", "description", "tools", "allowed-tools", "model", "argument-hint"}

func runPreview(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read component: %w", err)
	}

	out := cmd.OutOrStdout()
	plain := previewNoColor || deps.Detector.Headless()

	body := string(data)
	block, parsedBody, err := frontmatter.Parse(string(data))
	switch {
	case err == nil:
		body = parsedBody
		pairs := make([]kvPair, 0, len(metadataKeys))
		for _, key := range metadataKeys {
			if value, ok := block.Get(key); ok {
				pairs = append(pairs, kvPair{key, strings.TrimSpace(value)})
			}
		}
		title := filepath.Base(path)
		if name, ok := block.Get("name"); ok {
			title = name
		}
		card := renderCard(title, renderKeyValueLines(pairs))
		_, _ = fmt.Fprintln(out, card)
	case errors.Is(err, frontmatter.ErrNoMetadataBlock):
		// Body-only documents still preview.
	default:
		return fmt.Errorf("parse metadata block: %w", err)
	}

	if plain {
		_, _ = fmt.Fprintln(out, body)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("build markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(body)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, _ = fmt.Fprint(out, rendered)
	return nil
}
