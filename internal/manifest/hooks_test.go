package manifest

import (
	"testing"
	"testing/fstest"
)

func treeWithHooks(hooksJSON string) fstest.MapFS {
	fsys := validTree()
	fsys[".claude-plugin/marketplace.json"] = &fstest.MapFile{Data: []byte(`{
		"name": "review-kit",
		"owner": {"name": "Dana"},
		"plugins": [{
			"name": "review-kit",
			"source": "./",
			"skills": ["./skills/code-review"],
			"agents": ["./agents/reviewer.md"],
			"commands": ["./commands/review.md"],
			"hooks": "./hooks/hooks.json"
		}]
	}`)}
	fsys["hooks/hooks.json"] = &fstest.MapFile{Data: []byte(hooksJSON)}
	return fsys
}

func TestHooksFileValid(t *testing.T) {
	t.Parallel()

	fsys := treeWithHooks(`{
		"hooks": {
			"PreToolUse": [{
				"matcher": "Edit|Write",
				"hooks": [{"type": "command", "command": "python3 scripts/guard.py --strict"}]
			}],
			"UserPromptSubmit": [{
				"hooks": [{"type": "prompt"}]
			}]
		}
	}`)

	result := NewValidator(nil).Validate(fsys)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %+v", result.Errors)
	}
}

func TestHooksFileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hooks    string
		wantText string
	}{
		{
			name:     "not json",
			hooks:    "{broken",
			wantText: "not valid JSON",
		},
		{
			name:     "missing hooks object",
			hooks:    `{"PreToolUse": []}`,
			wantText: `"hooks" object`,
		},
		{
			name:     "object matcher",
			hooks:    `{"hooks": {"PreToolUse": [{"matcher": {"tool": "Edit"}, "hooks": [{"type": "prompt"}]}]}}`,
			wantText: "matcher must be a string",
		},
		{
			name:     "missing nested hooks",
			hooks:    `{"hooks": {"Stop": [{"matcher": "x"}]}}`,
			wantText: "hooks list is required",
		},
		{
			name:     "command type without command",
			hooks:    `{"hooks": {"PostToolUse": [{"hooks": [{"type": "command"}]}]}}`,
			wantText: "command is required",
		},
		{
			name:     "bad hook type",
			hooks:    `{"hooks": {"PostToolUse": [{"hooks": [{"type": "shell", "command": "ls"}]}]}}`,
			wantText: `"command" or "prompt"`,
		},
		{
			name:     "unparseable shell command",
			hooks:    `{"hooks": {"PreToolUse": [{"hooks": [{"type": "command", "command": "if [ -z $x; then"}]}]}}`,
			wantText: "not valid shell",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := NewValidator(nil).Validate(treeWithHooks(tt.hooks))
			if !hasCode(result.Errors, CodeBadHooks) {
				t.Fatalf("want %s error, got %+v", CodeBadHooks, result.Errors)
			}
			if !anyMessageContains(result, tt.wantText) {
				t.Errorf("no finding mentions %q: %+v", tt.wantText, result.Errors)
			}
		})
	}
}

func TestHooksUnknownEventIsWarning(t *testing.T) {
	t.Parallel()

	result := NewValidator(nil).Validate(treeWithHooks(
		`{"hooks": {"SessionSprint": [{"hooks": [{"type": "prompt"}]}]}}`))

	if len(result.Errors) != 0 {
		t.Fatalf("unknown event must not be an error: %+v", result.Errors)
	}
	if !anyMessageContains(result, "unknown hook event") {
		t.Errorf("unknown event not warned: %+v", result.Warnings)
	}
}

func TestHooksDeclarationShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hooks    string
		wantText string
	}{
		{"list form", `["./hooks/hooks.json"]`, "single string path"},
		{"not relative", `"hooks/hooks.json"`, `"./"`},
		{"not json path", `"./hooks/hooks.yaml"`, `".json"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := validTree()
			fsys[".claude-plugin/marketplace.json"] = &fstest.MapFile{Data: []byte(`{
				"name": "review-kit",
				"owner": {"name": "Dana"},
				"plugins": [{
					"name": "review-kit",
					"source": "./",
					"skills": ["./skills/code-review"],
					"agents": ["./agents/reviewer.md"],
					"commands": ["./commands/review.md"],
					"hooks": ` + tt.hooks + `
				}]
			}`)}

			result := NewValidator(nil).Validate(fsys)
			if !anyMessageContains(result, tt.wantText) {
				t.Errorf("no finding mentions %q: %+v", tt.wantText, result.Errors)
			}
		})
	}
}
