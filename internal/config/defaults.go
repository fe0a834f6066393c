package config

// Defaults applied before the configuration file and environment
// overlays.
const (
	DefaultWordBudget     = 500
	DefaultRulesPath      = ".claude/skills/skill-rules.json"
	DefaultMaxSuggestions = 5
	DefaultFormat         = "text"
)

// NewDefaultConfig returns a Config carrying every default.
func NewDefaultConfig() *Config {
	return &Config{
		Lint: LintConfig{
			WordBudget: DefaultWordBudget,
		},
		Trigger: TriggerConfig{
			RulesPath:      DefaultRulesPath,
			MaxSuggestions: DefaultMaxSuggestions,
		},
		Output: OutputConfig{
			Format: DefaultFormat,
		},
	}
}
