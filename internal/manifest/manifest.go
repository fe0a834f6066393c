// Package manifest validates the marketplace manifest of a plugin tree:
// required fields, schema strictness, per-entry source shapes, declared
// component paths, and the registration cross-check between the manifest
// and the files actually on disk.
package manifest

import (
	"regexp"
	"sort"

	"github.com/clawlint/clawlint/internal/defs"
)

// ManifestPath is the manifest location inside a plugin tree.
const ManifestPath = defs.ClaudePluginDir + "/" + defs.MarketplaceJSON

// Finding codes for manifest validation. Each code identifies one
// distinct condition and is stable across runs.
const (
	CodeManifestMissing     = "E001"
	CodeManifestUnparseable = "E002"
	CodeMissingField        = "E003"
	CodeNoPlugins           = "E004"
	CodeEntryMissingName    = "E005"
	CodeBadSource           = "E006"
	CodeUnrecognizedField   = "E007"
	CodePathNotFound        = "E008"
	CodeSkillFileMissing    = "E009"
	CodeUnregistered        = "E010"
)

// Field sets for strict schema checking. Unrecognized fields are errors,
// not warnings: the plugin loader silently drops them, so a typo here
// means a silently broken manifest.
var (
	allowedRootFields = fieldSet(
		"$schema", "name", "owner", "plugins",
		"description", "version", "homepage", "metadata",
	)
	allowedOwnerFields    = fieldSet("name", "email", "url")
	allowedMetadataFields = fieldSet("description", "version", "pluginRoot")
	allowedEntryFields    = fieldSet(
		"name", "source", "description", "version", "author", "homepage",
		"repository", "license", "keywords", "category", "tags", "strict",
		"commands", "agents", "skills", "hooks", "mcpServers", "lspServers",
	)
	allowedAuthorFields = fieldSet("name", "email")

	// forbiddenEntryFields are common authoring mistakes that deserve a
	// pointed message instead of a generic unrecognized-field error.
	forbiddenEntryFields = map[string]string{
		"components": `use "skills", "agents", "commands" arrays instead of "components"`,
		"repo":       `"repo" belongs inside the source object, not at entry level`,
	}

	reservedNames = fieldSet(
		"claude-code-marketplace", "claude-code-plugins", "claude-plugins-official",
		"anthropic-marketplace", "anthropic-plugins", "agent-skills", "life-sciences",
	)
)

var (
	kebabCaseExpr = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
	repoExpr      = regexp.MustCompile(`^[^/]+/[^/]+$`)
	urlExpr       = regexp.MustCompile(`^https?://`)
)

func fieldSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// asObject returns v as a JSON object, or nil.
func asObject(v any) map[string]any {
	obj, _ := v.(map[string]any)
	return obj
}

// asString returns v as a string, or "".
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asList returns v as a slice. A bare string is treated as a
// single-element list, matching how the plugin loader reads it.
func asList(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case string:
		return []any{t}
	default:
		return nil
	}
}

// unrecognizedKeys returns the keys of obj not present in allowed,
// sorted for deterministic messages.
func unrecognizedKeys(obj map[string]any, allowed map[string]bool) []string {
	var extra []string
	for key := range obj {
		if !allowed[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return extra
}
