package manifest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/clawlint/clawlint/internal/report"
)

// CodeBadHooks identifies a hooks file that exists but does not satisfy
// the hooks schema, or a command inside it that is not valid shell.
const CodeBadHooks = "E011"

// hookEvents are the event names a hooks file may bind.
var hookEvents = fieldSet("PreToolUse", "PostToolUse", "UserPromptSubmit", "Stop")

// hooksDocument mirrors the hooks file schema: a top-level "hooks"
// object mapping event names to matcher groups, each carrying a nested
// hook list.
type hooksDocument struct {
	Hooks map[string]json.RawMessage `json:"hooks"`
}

type hookGroup struct {
	Matcher json.RawMessage `json:"matcher"`
	Hooks   []hookEntry     `json:"hooks"`
}

type hookEntry struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout"`
}

// checkHooksDeclaration validates an entry's hooks declaration: a single
// ./-relative .json path whose target parses as a hooks document and
// whose every command is syntactically valid POSIX shell. Commands are
// parsed, never run.
func (v *Validator) checkHooksDeclaration(fsys fs.FS, prefix string, entry map[string]any, result *report.Result) {
	raw, ok := entry["hooks"]
	if !ok {
		return
	}

	p, isString := raw.(string)
	if !isString {
		if _, isList := raw.([]any); isList {
			result.AddError(CodeBadSource, ManifestPath,
				prefix+`.hooks must be a single string path, not a list (e.g. "./hooks/hooks.json")`)
		} else {
			result.AddError(CodeBadSource, ManifestPath, prefix+".hooks must be a string path")
		}
		return
	}
	if !strings.HasPrefix(p, "./") {
		result.AddError(CodeBadSource, ManifestPath,
			fmt.Sprintf(`%s.hooks %q must start with "./"`, prefix, p))
		return
	}
	if !strings.HasSuffix(p, ".json") {
		result.AddError(CodeBadSource, ManifestPath,
			fmt.Sprintf(`%s.hooks %q must end with ".json"`, prefix, p))
		return
	}

	data, err := fs.ReadFile(fsys, relative(p))
	if err != nil {
		result.AddError(CodePathNotFound, relative(p), fmt.Sprintf("%s.hooks: file not found", prefix))
		return
	}
	v.checkHooksFile(relative(p), data, result)
}

// checkHooksFile validates the content of one hooks file.
func (v *Validator) checkHooksFile(file string, data []byte, result *report.Result) {
	var doc hooksDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		result.AddError(CodeBadHooks, file, fmt.Sprintf("hooks file is not valid JSON: %v", err))
		return
	}
	if doc.Hooks == nil {
		result.AddError(CodeBadHooks, file, `hooks file missing required top-level "hooks" object`)
		return
	}

	for event, rawGroups := range doc.Hooks {
		if strings.HasPrefix(event, "$") {
			continue
		}
		if !hookEvents[event] {
			result.AddWarning("", file, fmt.Sprintf("unknown hook event %q", event))
			continue
		}

		var groups []hookGroup
		if err := json.Unmarshal(rawGroups, &groups); err != nil {
			result.AddError(CodeBadHooks, file,
				fmt.Sprintf("hooks.%s must be a list of matcher groups: %v", event, err))
			continue
		}

		for i, group := range groups {
			groupRef := fmt.Sprintf("hooks.%s[%d]", event, i)

			if len(group.Matcher) > 0 {
				var matcher string
				if err := json.Unmarshal(group.Matcher, &matcher); err != nil {
					result.AddError(CodeBadHooks, file, groupRef+
						".matcher must be a string; object matchers are not supported, filter inside the hook script instead")
				}
			}
			if len(group.Hooks) == 0 {
				result.AddError(CodeBadHooks, file, groupRef+".hooks list is required")
				continue
			}

			for j, h := range group.Hooks {
				ref := fmt.Sprintf("%s.hooks[%d]", groupRef, j)
				switch h.Type {
				case "command":
					if h.Command == "" {
						result.AddError(CodeBadHooks, file, ref+`.command is required when type is "command"`)
						continue
					}
					if err := checkShellSyntax(h.Command); err != nil {
						result.AddError(CodeBadHooks, file,
							fmt.Sprintf("%s.command is not valid shell: %v", ref, err))
					}
				case "prompt":
				case "":
					result.AddError(CodeBadHooks, file, ref+`.type is required ("command" or "prompt")`)
				default:
					result.AddError(CodeBadHooks, file,
						fmt.Sprintf(`%s.type must be "command" or "prompt", got %q`, ref, h.Type))
				}
			}
		}
	}
}

// checkShellSyntax parses cmd as POSIX shell without executing it.
func checkShellSyntax(cmd string) error {
	_, err := syntax.NewParser().Parse(strings.NewReader(cmd), "")
	return err
}
