package enforcement

import (
	"strings"
	"testing"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		keyword    string
		wantHits   int
		wantFP     bool
		wantReason string
	}{
		{
			name:     "genuine rule in prose",
			content:  "You MUST run the linter before pushing.",
			keyword:  "MUST",
			wantHits: 1,
			wantFP:   false,
		},
		{
			name:     "case insensitive whole word",
			content:  "this step is required, not optional",
			keyword:  "REQUIRED",
			wantHits: 1,
			wantFP:   false,
		},
		{
			name:     "substring inside larger word is not a hit",
			content:  "pass the MUSTard and the requiredness",
			keyword:  "MUST",
			wantHits: 0,
		},
		{
			name:       "inline code span",
			content:    "The word is inside a `CRITICAL` span.",
			keyword:    "CRITICAL",
			wantHits:   1,
			wantFP:     true,
			wantReason: "inline code",
		},
		{
			name:       "table header cell",
			content:    "| Required | Optional |",
			keyword:    "Required",
			wantHits:   1,
			wantFP:     true,
			wantReason: "table header",
		},
		{
			name:       "template placeholder",
			content:    "Set the {CRITICAL-SECTION} marker before running.",
			keyword:    "CRITICAL",
			wantHits:   1,
			wantFP:     true,
			wantReason: "placeholder",
		},
		{
			name:       "inside fenced code block",
			content:    "Intro.\n```\nif REQUIRED {\n```\nOutro.",
			keyword:    "REQUIRED",
			wantHits:   1,
			wantFP:     true,
			wantReason: "fenced code",
		},
		{
			name:     "after closed fence is prose again",
			content:  "```\ncode\n```\nThis is REQUIRED reading.",
			keyword:  "REQUIRED",
			wantHits: 1,
			wantFP:   false,
		},
		{
			name:     "multiple occurrences",
			content:  "MUST do A. You must also do B.",
			keyword:  "MUST",
			wantHits: 2,
			wantFP:   false,
		},
		{
			name:     "empty content",
			content:  "",
			keyword:  "MUST",
			wantHits: 0,
		},
		{
			name:     "empty keyword",
			content:  "MUST",
			keyword:  "",
			wantHits: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hits := Analyze(tt.content, tt.keyword)
			if len(hits) != tt.wantHits {
				t.Fatalf("Analyze() returned %d hits, want %d: %+v", len(hits), tt.wantHits, hits)
			}
			if tt.wantHits == 0 {
				return
			}

			for _, hit := range hits {
				if hit.LikelyFalsePositive != tt.wantFP {
					t.Errorf("LikelyFalsePositive = %v, want %v (reason %q)",
						hit.LikelyFalsePositive, tt.wantFP, hit.Reason)
				}
				if !hit.LikelyFalsePositive && hit.Reason != "" {
					t.Errorf("genuine hit carries reason %q, want empty", hit.Reason)
				}
				if tt.wantReason != "" && !strings.Contains(hit.Reason, tt.wantReason) {
					t.Errorf("Reason = %q, want mention of %q", hit.Reason, tt.wantReason)
				}
			}
		})
	}
}

func TestAnalyzeMatchedText(t *testing.T) {
	t.Parallel()

	hits := Analyze("You Must do this. you must not skip it.", "MUST")
	if len(hits) != 2 {
		t.Fatalf("len(hits) = %d, want 2", len(hits))
	}
	if hits[0].Text != "Must" {
		t.Errorf("hits[0].Text = %q, want original casing preserved", hits[0].Text)
	}
	if hits[1].Text != "must" {
		t.Errorf("hits[1].Text = %q, want %q", hits[1].Text, "must")
	}
}

// Two heuristics firing on the same occurrence resolve to the one
// checked later. Pinned deliberately: changing the check order changes
// observable reasons.
func TestAnalyzeLastHeuristicWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		keyword    string
		wantReason string
	}{
		{
			name:       "placeholder inside fence resolves to fence",
			content:    "```\nuse {CRITICAL-FLAG} here\n",
			keyword:    "CRITICAL",
			wantReason: "inside fenced code block",
		},
		{
			name:       "table cell with inline code resolves to inline code",
			content:    "| `REQUIRED` |",
			keyword:    "REQUIRED",
			wantReason: "inline code span",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hits := Analyze(tt.content, tt.keyword)
			if len(hits) != 1 {
				t.Fatalf("len(hits) = %d, want 1", len(hits))
			}
			if !hits[0].LikelyFalsePositive {
				t.Fatal("LikelyFalsePositive = false, want true")
			}
			if hits[0].Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", hits[0].Reason, tt.wantReason)
			}
		})
	}
}

func TestHitTag(t *testing.T) {
	t.Parallel()

	genuine := Hit{Text: "MUST"}
	if genuine.Tag() != "looks like a real rule" {
		t.Errorf("Tag() = %q", genuine.Tag())
	}
	fp := Hit{Text: "MUST", LikelyFalsePositive: true, Reason: "inline code span"}
	if fp.Tag() != "likely false positive" {
		t.Errorf("Tag() = %q", fp.Tag())
	}
	if got := fp.String(); !strings.Contains(got, `"MUST"`) || !strings.Contains(got, "likely false positive") {
		t.Errorf("String() = %q", got)
	}
}
