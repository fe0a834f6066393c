package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/clawlint/clawlint/internal/defs"
)

// configLocations are the paths probed for the configuration file,
// relative to the tree root, in order.
var configLocations = []string{
	defs.ConfigYAML,
	filepath.Join(defs.ClaudePluginDir, defs.ConfigYAML),
}

// Load builds the effective configuration for a tree root: defaults,
// then the first clawlint.yaml found, then CLAWLINT_* environment
// variables. A missing file is not an error; a malformed one is.
func Load(root string) (*Config, error) {
	cfg := NewDefaultConfig()

	for _, loc := range configLocations {
		path := filepath.Join(root, loc)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, ErrInvalidYAML)
		}
		slog.Debug("config file loaded", "path", path)
		break
	}

	// Environment overlays win over the file: CLAWLINT_LINT_WORD_BUDGET,
	// CLAWLINT_OUTPUT_FORMAT, and so on.
	for section, target := range map[string]any{
		"LINT":    &cfg.Lint,
		"TRIGGER": &cfg.Trigger,
		"OUTPUT":  &cfg.Output,
	} {
		if err := envconfig.Process("CLAWLINT_"+section, target); err != nil {
			return nil, fmt.Errorf("process CLAWLINT_%s environment: %w", section, err)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
