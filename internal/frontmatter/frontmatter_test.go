package frontmatter

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		wantErr  error
		wantBody string
		wantKeys int
	}{
		{
			name:     "well formed block",
			content:  "---\nname: review-helper\ndescription: Reviews diffs\n---\n\n# Review Helper\n\nBody text.",
			wantBody: "# Review Helper\n\nBody text.",
			wantKeys: 2,
		},
		{
			name:     "no opening delimiter",
			content:  "# Just a document\n\nNo header here.",
			wantErr:  ErrNoMetadataBlock,
			wantBody: "# Just a document\n\nNo header here.",
		},
		{
			name:     "unclosed block",
			content:  "---\nname: lonely\ndescription: never closed",
			wantErr:  ErrUnclosedMetadataBlock,
			wantBody: "---\nname: lonely\ndescription: never closed",
		},
		{
			name:     "delimiter only document",
			content:  "---",
			wantErr:  ErrUnclosedMetadataBlock,
			wantBody: "---",
		},
		{
			name:     "empty block",
			content:  "---\n---\nBody after empty header.",
			wantBody: "Body after empty header.",
		},
		{
			name:     "closing delimiter at end of file",
			content:  "---\nname: tail\n---",
			wantBody: "",
			wantKeys: 1,
		},
		{
			name:     "crlf line endings",
			content:  "---\r\nname: windows\r\n---\r\nBody.",
			wantBody: "Body.",
			wantKeys: 1,
		},
		{
			name:     "indented delimiter does not close",
			content:  "---\nname: open\n  ---\nstill header",
			wantErr:  ErrUnclosedMetadataBlock,
			wantBody: "---\nname: open\n  ---\nstill header",
		},
		{
			name:     "horizontal rule later in body",
			content:  "---\nname: hr\n---\nIntro.\n\n---\n\nOutro.",
			wantBody: "Intro.\n\n---\n\nOutro.",
			wantKeys: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			block, body, err := Parse(tt.content)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				if block != nil {
					t.Errorf("Parse() block = %v, want nil", block)
				}
			} else {
				if err != nil {
					t.Fatalf("Parse() unexpected error: %v", err)
				}
				if block == nil {
					t.Fatal("Parse() block is nil for well-formed document")
				}
				if got := block.Len(); got != tt.wantKeys {
					t.Errorf("block.Len() = %d, want %d", got, tt.wantKeys)
				}
			}

			if body != tt.wantBody {
				t.Errorf("Parse() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseFallbackLines(t *testing.T) {
	t.Parallel()

	// Tab-indented continuation makes the header invalid YAML, which
	// routes parsing through the line-by-line fallback.
	content := "---\nname: fallback\n\tstray tab line\nignored line without separator\ndescription: \"quoted value\"\nname: last-wins\n---\nBody."

	block, body, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if body != "Body." {
		t.Errorf("body = %q, want %q", body, "Body.")
	}

	if got, _ := block.Get("name"); got != "last-wins" {
		t.Errorf("Get(name) = %q, want %q (last occurrence wins)", got, "last-wins")
	}
	if got, _ := block.Get("description"); got != "quoted value" {
		t.Errorf("Get(description) = %q, want quotes stripped", got)
	}
	if block.Has("ignored line without separator") {
		t.Error("separator-less line should be skipped")
	}
}

func TestBlockGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		key     string
		want    string
		wantOK  bool
	}{
		{
			name:    "present value",
			content: "---\nname: sql-helper\n---\n",
			key:     "name",
			want:    "sql-helper",
			wantOK:  true,
		},
		{
			name:    "empty value treated as absent",
			content: "---\nname:\ndescription: d\n---\n",
			key:     "name",
			wantOK:  false,
		},
		{
			name:    "missing key",
			content: "---\nname: x\n---\n",
			key:     "description",
			wantOK:  false,
		},
		{
			name:    "quoted value",
			content: "---\ndescription: 'single quoted'\n---\n",
			key:     "description",
			want:    "single quoted",
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			block, _, err := Parse(tt.content)
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			got, ok := block.Get(tt.key)
			if ok != tt.wantOK {
				t.Fatalf("Get(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestBlockList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		key     string
		want    []string
	}{
		{
			name:    "flow list",
			content: "---\ntools: [\"Read\", \"Grep\", \"Glob\"]\n---\n",
			key:     "tools",
			want:    []string{"Read", "Grep", "Glob"},
		},
		{
			name:    "comma separated scalar",
			content: "---\nskills: alpha, beta , gamma\n---\n",
			key:     "skills",
			want:    []string{"alpha", "beta", "gamma"},
		},
		{
			name:    "single scalar",
			content: "---\nskills: solo\n---\n",
			key:     "skills",
			want:    []string{"solo"},
		},
		{
			name:    "absent key",
			content: "---\nname: x\n---\n",
			key:     "skills",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			block, _, err := Parse(tt.content)
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			got := block.List(tt.key)
			if len(got) != len(tt.want) {
				t.Fatalf("List(%q) = %v, want %v", tt.key, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("List(%q)[%d] = %q, want %q", tt.key, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNilBlockAccessors(t *testing.T) {
	t.Parallel()

	var b *Block
	if _, ok := b.Get("name"); ok {
		t.Error("nil block Get() ok = true, want false")
	}
	if b.Has("name") {
		t.Error("nil block Has() = true, want false")
	}
	if b.List("skills") != nil {
		t.Error("nil block List() != nil")
	}
	if b.Len() != 0 {
		t.Error("nil block Len() != 0")
	}
}
