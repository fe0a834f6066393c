package defs

// Common file names used across the project.
const (
	// MarketplaceJSON is the plugin manifest file.
	MarketplaceJSON = "marketplace.json"

	// PluginJSON is the single-plugin manifest fallback.
	PluginJSON = "plugin.json"

	// SkillFile is the required entry document inside every skill directory.
	SkillFile = "SKILL.md"

	// HooksJSON is the enforcement-mechanism configuration file.
	HooksJSON = "hooks.json"

	// SkillRulesJSON is the trigger rule-set document.
	SkillRulesJSON = "skill-rules.json"

	// ConfigYAML is the clawlint configuration file.
	ConfigYAML = "clawlint.yaml"
)

// Directory names at the plugin tree root.
const (
	ClaudePluginDir = ".claude-plugin"
	ClaudeDir       = ".claude"
	SkillsDir       = "skills"
	AgentsDir       = "agents"
	CommandsDir     = "commands"
	HooksDir        = "hooks"
	ReferencesDir   = "references"
)

// MarkdownExt is the extension required for agent and command documents.
const MarkdownExt = ".md"
