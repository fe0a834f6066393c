package config

import "slices"

// Config is the root configuration aggregate. Every field has a default
// so an absent configuration file yields a fully usable Config.
type Config struct {
	Lint    LintConfig    `yaml:"lint"`
	Trigger TriggerConfig `yaml:"trigger"`
	Output  OutputConfig  `yaml:"output"`
}

// LintConfig tunes the validation pipeline.
type LintConfig struct {
	// WordBudget is the soft limit on skill body words.
	WordBudget int `yaml:"word_budget" envconfig:"WORD_BUDGET"`

	// Keywords overrides the enforcement vocabulary scanned by the
	// hookify check. Empty keeps the built-in vocabulary.
	Keywords []string `yaml:"keywords" envconfig:"KEYWORDS"`
}

// TriggerConfig tunes prompt trigger matching.
type TriggerConfig struct {
	// RulesPath locates the trigger rule document, relative to the
	// plugin tree root.
	RulesPath string `yaml:"rules_path" envconfig:"RULES_PATH"`

	// MaxSuggestions caps the rules shown in the trigger banner.
	MaxSuggestions int `yaml:"max_suggestions" envconfig:"MAX_SUGGESTIONS"`
}

// OutputConfig tunes report rendering.
type OutputConfig struct {
	// Format selects the report encoding: "text" or "json".
	Format string `yaml:"format" envconfig:"FORMAT"`

	// NoColor disables terminal styling regardless of TTY state.
	NoColor bool `yaml:"no_color" envconfig:"NO_COLOR"`
}

// Output formats accepted by OutputConfig.Format.
var outputFormats = []string{"text", "json"}

// IsValidOutputFormat checks whether name is an accepted output format.
func IsValidOutputFormat(name string) bool {
	return slices.Contains(outputFormats, name)
}
