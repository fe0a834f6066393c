package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/clawlint/clawlint/internal/defs"
	"github.com/clawlint/clawlint/internal/report"
)

// Validator checks a plugin tree's marketplace manifest.
type Validator struct {
	logger *slog.Logger
}

// NewValidator creates a Validator. logger may be nil.
func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Validator{logger: logger}
}

// Validate runs the full manifest check against fsys, which is rooted at
// the plugin tree. A missing or unparseable manifest and an empty plugin
// list each short-circuit with a single fatal finding: every later check
// would only cascade misleading errors on top.
func (v *Validator) Validate(fsys fs.FS) *report.Result {
	result := report.NewResult()

	raw, err := fs.ReadFile(fsys, ManifestPath)
	if err != nil {
		result.AddError(CodeManifestMissing, ManifestPath, "manifest not found; a plugin tree requires .claude-plugin/marketplace.json")
		return result
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		result.AddError(CodeManifestUnparseable, ManifestPath, fmt.Sprintf("manifest is not valid JSON: %v", err))
		return result
	}

	v.checkRoot(data, result)

	plugins := asList(data["plugins"])
	if _, declared := data["plugins"]; !declared || len(plugins) == 0 {
		result.AddError(CodeNoPlugins, ManifestPath, "'plugins' list is absent or empty; at least one entry is required")
		return result
	}

	declared := newDeclaredPaths()
	for i, entry := range plugins {
		v.checkEntry(fsys, i, entry, declared, result)
	}
	v.checkRegistration(fsys, declared, result)

	if !result.HasErrors() {
		result.AddPass(fmt.Sprintf("manifest valid: %d plugin entr%s", len(plugins), pluralYIes(len(plugins))))
	}

	v.logger.Debug("manifest validated",
		"entries", len(plugins),
		"errors", len(result.Errors),
		"warnings", len(result.Warnings))

	return result
}

// checkRoot validates the manifest's top-level structure: strict field
// set, name shape, the recommended owner object, and metadata.
func (v *Validator) checkRoot(data map[string]any, result *report.Result) {
	if extra := unrecognizedKeys(data, allowedRootFields); len(extra) > 0 {
		result.AddError(CodeUnrecognizedField, ManifestPath,
			fmt.Sprintf("unrecognized top-level field(s): %s", strings.Join(extra, ", ")))
	}

	name := asString(data["name"])
	switch {
	case name == "":
		result.AddError(CodeMissingField, ManifestPath, "missing required field 'name'")
	case reservedNames[strings.ToLower(name)] || strings.Contains(strings.ToLower(name), "anthropic"):
		result.AddError(CodeMissingField, ManifestPath,
			fmt.Sprintf("name %q is reserved or impersonates an official marketplace", name))
	case strings.Contains(name, " "):
		result.AddError(CodeMissingField, ManifestPath,
			fmt.Sprintf("name %q must not contain spaces (use kebab-case)", name))
	case !kebabCaseExpr.MatchString(name):
		result.AddWarning("", ManifestPath,
			fmt.Sprintf("name %q is not kebab-case (lowercase words joined by hyphens)", name))
	}

	owner, hasOwner := data["owner"]
	if !hasOwner {
		result.AddWarning("", ManifestPath, "missing recommended field 'owner' (object with 'name')")
	} else if obj := asObject(owner); obj == nil {
		result.AddError(CodeMissingField, ManifestPath, "'owner' must be an object with a 'name' field")
	} else {
		if extra := unrecognizedKeys(obj, allowedOwnerFields); len(extra) > 0 {
			result.AddError(CodeUnrecognizedField, ManifestPath,
				fmt.Sprintf("'owner' has unrecognized field(s): %s", strings.Join(extra, ", ")))
		}
		if strings.TrimSpace(asString(obj["name"])) == "" {
			result.AddError(CodeMissingField, ManifestPath, "'owner.name' must be a non-empty string")
		}
	}

	if meta, ok := data["metadata"]; ok {
		if obj := asObject(meta); obj == nil {
			result.AddError(CodeMissingField, ManifestPath, "'metadata' must be an object")
		} else if extra := unrecognizedKeys(obj, allowedMetadataFields); len(extra) > 0 {
			result.AddError(CodeUnrecognizedField, ManifestPath,
				fmt.Sprintf("'metadata' has unrecognized field(s): %s", strings.Join(extra, ", ")))
		}
	}
}

// checkEntry validates one plugin entry: strict field set, name, source
// shape, repository, declared component paths, and the hooks file.
func (v *Validator) checkEntry(fsys fs.FS, idx int, raw any, declared *declaredPaths, result *report.Result) {
	prefix := fmt.Sprintf("plugins[%d]", idx)

	entry := asObject(raw)
	if entry == nil {
		result.AddError(CodeEntryMissingName, ManifestPath, prefix+" must be an object")
		return
	}

	if extra := unrecognizedKeys(entry, allowedEntryFields); len(extra) > 0 {
		for _, field := range extra {
			if reason, forbidden := forbiddenEntryFields[field]; forbidden {
				result.AddError(CodeUnrecognizedField, ManifestPath,
					fmt.Sprintf("%s.%s is not allowed: %s", prefix, field, reason))
			} else {
				result.AddError(CodeUnrecognizedField, ManifestPath,
					fmt.Sprintf("%s has unrecognized field %q", prefix, field))
			}
		}
	}

	name := asString(entry["name"])
	switch {
	case name == "":
		result.AddError(CodeEntryMissingName, ManifestPath, prefix+" missing required field 'name'")
	case strings.Contains(name, " "):
		result.AddError(CodeEntryMissingName, ManifestPath,
			fmt.Sprintf("%s.name %q must not contain spaces", prefix, name))
	}

	v.checkSource(prefix, entry, result)

	if author, ok := entry["author"]; ok {
		if obj := asObject(author); obj == nil {
			result.AddError(CodeMissingField, ManifestPath, prefix+".author must be an object with 'name'")
		} else {
			if extra := unrecognizedKeys(obj, allowedAuthorFields); len(extra) > 0 {
				result.AddError(CodeUnrecognizedField, ManifestPath,
					fmt.Sprintf("%s.author has unrecognized field(s): %s", prefix, strings.Join(extra, ", ")))
			}
			if asString(obj["name"]) == "" {
				result.AddError(CodeMissingField, ManifestPath, prefix+".author missing required field 'name'")
			}
		}
	}

	if repo, ok := entry["repository"]; ok {
		switch {
		case asObject(repo) != nil:
			result.AddError(CodeMissingField, ManifestPath,
				prefix+`.repository must be a string URL, not an object (e.g. "https://github.com/owner/repo")`)
		case asString(repo) == "":
			result.AddError(CodeMissingField, ManifestPath, prefix+".repository must be a string URL")
		case !urlExpr.MatchString(asString(repo)):
			result.AddWarning("", ManifestPath,
				fmt.Sprintf("%s.repository %q should be a full http(s) URL", prefix, asString(repo)))
		}
	}

	v.checkComponentPaths(fsys, prefix, entry, declared, result)
	v.checkHooksDeclaration(fsys, prefix, entry, result)
}

// checkSource validates the source field. A string source is a
// ./-relative path; an object source names its kind through the "source"
// key. The "type" key is a deliberate policy error: sources must not
// carry redundant self-describing kind metadata under that name.
func (v *Validator) checkSource(prefix string, entry map[string]any, result *report.Result) {
	source, ok := entry["source"]
	if !ok {
		result.AddError(CodeMissingField, ManifestPath, prefix+" missing required field 'source'")
		return
	}

	switch s := source.(type) {
	case string:
		switch {
		case s == "github" || s == "url":
			result.AddError(CodeBadSource, ManifestPath, fmt.Sprintf(
				`%s.source %q must be an object, e.g. {"source": "github", "repo": "owner/repo"}`, prefix, s))
		case !strings.HasPrefix(s, "./"):
			result.AddError(CodeBadSource, ManifestPath,
				fmt.Sprintf(`%s.source %q must start with "./"`, prefix, s))
		case strings.Contains(s, ".."):
			result.AddError(CodeBadSource, ManifestPath,
				fmt.Sprintf("%s.source %q contains path traversal (..)", prefix, s))
		}
	case map[string]any:
		if _, hasType := s["type"]; hasType {
			result.AddError(CodeBadSource, ManifestPath, fmt.Sprintf(
				`%s.source uses the "type" key; the kind must be declared through the "source" key instead`, prefix))
			return
		}
		switch kind := asString(s["source"]); kind {
		case "github":
			if repo := asString(s["repo"]); repo == "" {
				result.AddError(CodeBadSource, ManifestPath,
					prefix+`.source: GitHub source requires a "repo" field`)
			} else if !repoExpr.MatchString(repo) {
				result.AddError(CodeBadSource, ManifestPath,
					fmt.Sprintf(`%s.source.repo %q must be in "owner/repo" form`, prefix, repo))
			}
		case "url":
			if u := asString(s["url"]); u == "" {
				result.AddError(CodeBadSource, ManifestPath,
					prefix+`.source: URL source requires a "url" field`)
			} else if !urlExpr.MatchString(u) {
				result.AddError(CodeBadSource, ManifestPath,
					fmt.Sprintf("%s.source.url %q must be an http(s) URL", prefix, u))
			}
		default:
			result.AddError(CodeBadSource, ManifestPath, fmt.Sprintf(
				`%s.source.source must be "github" or "url", got %q`, prefix, kind))
		}
	default:
		result.AddError(CodeBadSource, ManifestPath,
			prefix+".source must be a string path or an object")
	}
}

// checkComponentPaths validates every declared skill/agent/command path:
// shape first (./-relative, correct extension), then resolution against
// the tree. Each missing resolution is its own finding so one bad path
// never hides another.
func (v *Validator) checkComponentPaths(fsys fs.FS, prefix string, entry map[string]any, declared *declaredPaths, result *report.Result) {
	for i, item := range asList(entry["commands"]) {
		p := asString(item)
		ref := fmt.Sprintf("%s.commands[%d]", prefix, i)
		if !v.checkPathShape(ref, p, true, result) {
			continue
		}
		declared.commands[strings.TrimSuffix(path.Base(p), defs.MarkdownExt)] = true
		if _, err := fs.Stat(fsys, relative(p)); err != nil {
			result.AddError(CodePathNotFound, relative(p), fmt.Sprintf("%s: file not found", ref))
		}
	}

	for i, item := range asList(entry["agents"]) {
		p := asString(item)
		ref := fmt.Sprintf("%s.agents[%d]", prefix, i)
		if !v.checkPathShape(ref, p, true, result) {
			continue
		}
		declared.agents[strings.TrimSuffix(path.Base(p), defs.MarkdownExt)] = true
		if _, err := fs.Stat(fsys, relative(p)); err != nil {
			result.AddError(CodePathNotFound, relative(p), fmt.Sprintf("%s: file not found", ref))
		}
	}

	for i, item := range asList(entry["skills"]) {
		p := asString(item)
		ref := fmt.Sprintf("%s.skills[%d]", prefix, i)
		if !v.checkPathShape(ref, p, false, result) {
			continue
		}
		dir := relative(p)
		declared.skills[path.Base(dir)] = true
		if info, err := fs.Stat(fsys, dir); err != nil {
			result.AddError(CodePathNotFound, dir, fmt.Sprintf("%s: directory not found", ref))
		} else if !info.IsDir() {
			result.AddError(CodePathNotFound, dir, fmt.Sprintf("%s: %q is not a directory", ref, p))
		} else if _, err := fs.Stat(fsys, path.Join(dir, defs.SkillFile)); err != nil {
			result.AddError(CodeSkillFileMissing, path.Join(dir, defs.SkillFile),
				fmt.Sprintf("%s: skill directory exists but has no %s", ref, defs.SkillFile))
		}
	}
}

// checkPathShape validates one declared path's form: ./-relative, never
// absolute or traversing, and carrying the .md extension exactly when
// the component kind is a file. Returns false when the path is too
// malformed to resolve.
func (v *Validator) checkPathShape(ref, p string, wantMarkdown bool, result *report.Result) bool {
	if p == "" {
		result.AddError(CodeBadSource, ManifestPath, ref+" must be a string path")
		return false
	}
	if strings.HasPrefix(p, "/") {
		result.AddError(CodeBadSource, ManifestPath,
			fmt.Sprintf("%s %q must be relative, not absolute", ref, p))
		return false
	}
	if strings.Contains(p, "..") {
		result.AddError(CodeBadSource, ManifestPath,
			fmt.Sprintf("%s %q contains path traversal (..)", ref, p))
		return false
	}
	if !strings.HasPrefix(p, "./") {
		result.AddError(CodeBadSource, ManifestPath,
			fmt.Sprintf(`%s %q must start with "./"`, ref, p))
	}
	if wantMarkdown && !strings.HasSuffix(p, defs.MarkdownExt) {
		result.AddError(CodeBadSource, ManifestPath,
			fmt.Sprintf("%s %q must end with %s", ref, p, defs.MarkdownExt))
		return false
	}
	if !wantMarkdown && strings.HasSuffix(p, defs.MarkdownExt) {
		result.AddError(CodeBadSource, ManifestPath, fmt.Sprintf(
			"%s %q has a %s extension, but skills are directories containing %s",
			ref, p, defs.MarkdownExt, defs.SkillFile))
		return false
	}
	return true
}

// declaredPaths records the component names declared by any entry, for
// the registration cross-check.
type declaredPaths struct {
	commands map[string]bool
	agents   map[string]bool
	skills   map[string]bool
}

func newDeclaredPaths() *declaredPaths {
	return &declaredPaths{
		commands: make(map[string]bool),
		agents:   make(map[string]bool),
		skills:   make(map[string]bool),
	}
}

// checkRegistration reports component files present on disk that no
// manifest entry declares. The plugin loader only sees declared paths,
// so an undeclared component is silently dead.
func (v *Validator) checkRegistration(fsys fs.FS, declared *declaredPaths, result *report.Result) {
	for _, dir := range []struct {
		name string
		seen map[string]bool
	}{
		{defs.CommandsDir, declared.commands},
		{defs.AgentsDir, declared.agents},
	} {
		entries, err := fs.ReadDir(fsys, dir.name)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), defs.MarkdownExt) {
				continue
			}
			stem := strings.TrimSuffix(entry.Name(), defs.MarkdownExt)
			if !dir.seen[stem] {
				result.AddError(CodeUnregistered, path.Join(dir.name, entry.Name()),
					fmt.Sprintf("%s/%s exists but is not registered in the manifest", dir.name, entry.Name()))
			}
		}
	}

	skillDirs, err := fs.ReadDir(fsys, defs.SkillsDir)
	if err != nil {
		return
	}
	for _, entry := range skillDirs {
		if !entry.IsDir() || declared.skills[entry.Name()] {
			continue
		}
		// Only directories carrying a SKILL.md count as components.
		if _, err := fs.Stat(fsys, path.Join(defs.SkillsDir, entry.Name(), defs.SkillFile)); err == nil {
			result.AddError(CodeUnregistered, path.Join(defs.SkillsDir, entry.Name()),
				fmt.Sprintf("%s/%s exists with %s but is not registered in the manifest",
					defs.SkillsDir, entry.Name(), defs.SkillFile))
		}
	}
}

// relative strips the leading "./" so a declared path can be resolved
// against an fs.FS root.
func relative(p string) string {
	return strings.TrimPrefix(p, "./")
}

func pluralYIes(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
