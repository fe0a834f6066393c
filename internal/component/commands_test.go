package component

import (
	"strings"
	"testing"

	"github.com/clawlint/clawlint/internal/tree"
)

func TestValidateCommandsAbsentDirectory(t *testing.T) {
	t.Parallel()

	result := NewValidator(0, nil).ValidateCommands(&tree.Snapshot{CommandsAbsent: true})
	if !result.Absent || len(result.Passed) != 1 {
		t.Fatalf("result = %+v, want absent with one pass", result)
	}
}

func TestValidateCommandDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		content      string
		wantWarnings int
	}{
		{"with description", "---\ndescription: run checks\n---\nSteps.", 0},
		{"missing description", "---\nname: check\n---\nSteps.", 1},
		{"no metadata block", "Steps only.", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := &tree.Snapshot{Commands: []tree.File{{Path: "commands/check.md", Content: tt.content}}}
			result := NewValidator(0, nil).ValidateCommands(snap)

			if len(result.Warnings) != tt.wantWarnings {
				t.Errorf("len(Warnings) = %d, want %d: %+v", len(result.Warnings), tt.wantWarnings, result.Warnings)
			}
			if len(result.Passed) != 1 {
				t.Errorf("len(Passed) = %d, want 1", len(result.Passed))
			}
		})
	}
}

func TestValidateCommandSkillMentions(t *testing.T) {
	t.Parallel()

	snap := &tree.Snapshot{
		Skills: []tree.Skill{
			{Name: "code-review", HasEntry: true},
			{Name: "style-guide", HasEntry: true},
		},
		Commands: []tree.File{{
			Path:    "commands/review.md",
			Content: "---\ndescription: d\n---\nApply code-review to the diff.",
		}},
	}

	result := NewValidator(0, nil).ValidateCommands(snap)

	w := findWarning(result.Warnings, CodeSkillsNotInvoked)
	if w == nil {
		t.Fatalf("want %s warning: %+v", CodeSkillsNotInvoked, result.Warnings)
	}
	if !strings.Contains(w.Message, "code-review") || strings.Contains(w.Message, "style-guide") {
		t.Errorf("warning should name only the mentioned skill:\n%s", w.Message)
	}

	snap.Commands[0].Content = "---\ndescription: d\n---\nApply Skill(\"kit:code-review\") to the diff."
	result = NewValidator(0, nil).ValidateCommands(snap)
	if w := findWarning(result.Warnings, CodeSkillsNotInvoked); w != nil {
		t.Errorf("invocation present but still warned: %+v", w)
	}
}

func TestValidateCommandStagedWorkflow(t *testing.T) {
	t.Parallel()

	snap := &tree.Snapshot{Commands: []tree.File{{
		Path: "commands/release.md",
		Content: "---\ndescription: d\n---\n" +
			"## 1. Freeze\n## 2. Tag\n## 3. Publish\n## 4. Announce\n",
	}}}

	result := NewValidator(0, nil).ValidateCommands(snap)
	if w := findWarning(result.Warnings, CodeStagedNoSkillLoad); w == nil {
		t.Fatalf("want %s warning: %+v", CodeStagedNoSkillLoad, result.Warnings)
	}
}
