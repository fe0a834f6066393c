package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clawlint/clawlint/internal/trigger"
)

const testRules = `{
	"skills": {
		"pdf-tools": {
			"priority": "high",
			"promptTriggers": {"keywords": ["pdf"], "intentPatterns": []}
		},
		"doc-writer": {
			"priority": "low",
			"promptTriggers": {"keywords": ["document"], "intentPatterns": []}
		}
	},
	"complexity_levels": {
		"advanced": {"keywords": ["architecture"], "auto_skills": ["planner"]}
	}
}`

func writeRules(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skill-rules.json")
	if err := os.WriteFile(path, []byte(testRules), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func resetTriggerState() {
	triggerRulesPath = ""
	triggerJSON = false
	InitDependencies()
	deps.Detector.Force(true)
}

func TestTriggerBanner(t *testing.T) {
	resetTriggerState()
	triggerRulesPath = writeRules(t)

	var buf bytes.Buffer
	cmd := newTestCommand(&buf)
	if err := runTrigger(cmd, []string{"extract", "pdf", "text"}); err != nil {
		t.Fatalf("runTrigger() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "RECOMMENDED SKILLS") {
		t.Errorf("banner missing header: %q", out)
	}
	if !strings.Contains(out, "⚡ pdf-tools") {
		t.Errorf("banner missing high-priority icon line: %q", out)
	}
}

func TestTriggerBannerComplexity(t *testing.T) {
	resetTriggerState()
	triggerRulesPath = writeRules(t)

	var buf bytes.Buffer
	if err := runTrigger(newTestCommand(&buf), []string{"design", "the", "architecture"}); err != nil {
		t.Fatalf("runTrigger() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Complexity: ADVANCED") {
		t.Errorf("banner missing uppercased complexity: %q", out)
	}
	if !strings.Contains(out, "💡 planner") {
		t.Errorf("banner missing complexity auto skill: %q", out)
	}
}

func TestTriggerJSON(t *testing.T) {
	resetTriggerState()
	triggerRulesPath = writeRules(t)
	triggerJSON = true

	var buf bytes.Buffer
	if err := runTrigger(newTestCommand(&buf), []string{"write", "a", "document"}); err != nil {
		t.Fatalf("runTrigger() error = %v", err)
	}

	var match trigger.Match
	if err := json.Unmarshal(buf.Bytes(), &match); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(match.Capabilities) != 1 || match.Capabilities[0].Name != "doc-writer" {
		t.Errorf("capabilities = %+v, want doc-writer", match.Capabilities)
	}
}

func TestTriggerEmptyStdinSilent(t *testing.T) {
	resetTriggerState()
	triggerRulesPath = writeRules(t)

	var buf bytes.Buffer
	cmd := newTestCommand(&buf)
	cmd.SetIn(strings.NewReader(""))
	if err := runTrigger(cmd, nil); err != nil {
		t.Fatalf("runTrigger() error = %v, want silent nil", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestTriggerStdinHookMode(t *testing.T) {
	resetTriggerState()
	triggerRulesPath = writeRules(t)

	var buf bytes.Buffer
	cmd := newTestCommand(&buf)
	cmd.SetIn(strings.NewReader(`{"prompt": "merge the pdf files"}`))
	if err := runTrigger(cmd, nil); err != nil {
		t.Fatalf("runTrigger() error = %v", err)
	}
	if !strings.Contains(buf.String(), "pdf-tools") {
		t.Errorf("hook mode output missing match: %q", buf.String())
	}
}

func TestTriggerMissingRulesSilent(t *testing.T) {
	resetTriggerState()
	triggerRulesPath = filepath.Join(t.TempDir(), "absent.json")

	var buf bytes.Buffer
	if err := runTrigger(newTestCommand(&buf), []string{"anything"}); err != nil {
		t.Fatalf("runTrigger() error = %v, want silent nil", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestTriggerNoMatchNoBanner(t *testing.T) {
	resetTriggerState()
	triggerRulesPath = writeRules(t)

	var buf bytes.Buffer
	if err := runTrigger(newTestCommand(&buf), []string{"unrelated", "chatter"}); err != nil {
		t.Fatalf("runTrigger() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no banner, got %q", buf.String())
	}
}
