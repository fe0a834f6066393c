package tree

import (
	"context"
	"testing"
	"testing/fstest"
)

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"skills/review/SKILL.md":            {Data: []byte("---\nname: review\n---\nBody.")},
		"skills/review/references/notes.md": {Data: []byte("# Notes")},
		"skills/empty-dir/placeholder.txt":  {Data: []byte("x")},
		"agents/deploy.md":                  {Data: []byte("---\nname: deploy\n---\nAgent body.")},
		"agents/readme.txt":                 {Data: []byte("not a component")},
		"commands/release.md":               {Data: []byte("---\ndescription: cut a release\n---\nSteps.")},
		"hooks/hooks.json":                  {Data: []byte("{}")},
	}

	snap, err := NewLoader(nil).Load(context.Background(), fsys)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if len(snap.Skills) != 2 {
		t.Fatalf("len(Skills) = %d, want 2", len(snap.Skills))
	}

	byName := map[string]Skill{}
	for _, s := range snap.Skills {
		byName[s.Name] = s
	}

	review, ok := byName["review"]
	if !ok {
		t.Fatal("skill review not loaded")
	}
	if !review.HasEntry {
		t.Error("review.HasEntry = false, want true")
	}
	if !review.HasReferences {
		t.Error("review.HasReferences = false, want true")
	}
	if review.Entry.Path != "skills/review/SKILL.md" {
		t.Errorf("review.Entry.Path = %q", review.Entry.Path)
	}

	empty, ok := byName["empty-dir"]
	if !ok {
		t.Fatal("skill empty-dir not loaded")
	}
	if empty.HasEntry {
		t.Error("empty-dir.HasEntry = true, want false (no SKILL.md)")
	}

	if len(snap.Agents) != 1 || snap.Agents[0].Path != "agents/deploy.md" {
		t.Errorf("Agents = %+v, want only agents/deploy.md", snap.Agents)
	}
	if len(snap.Commands) != 1 {
		t.Errorf("len(Commands) = %d, want 1", len(snap.Commands))
	}
	if !snap.HasHooksFile {
		t.Error("HasHooksFile = false, want true")
	}
	if snap.SkillsAbsent || snap.AgentsAbsent || snap.CommandsAbsent {
		t.Error("absent flags set for present directories")
	}
}

func TestLoaderAbsentDirs(t *testing.T) {
	t.Parallel()

	snap, err := NewLoader(nil).Load(context.Background(), fstest.MapFS{
		"README.md": {Data: []byte("# empty tree")},
	})
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if !snap.SkillsAbsent || !snap.AgentsAbsent || !snap.CommandsAbsent {
		t.Errorf("absent flags = %v/%v/%v, want all true",
			snap.SkillsAbsent, snap.AgentsAbsent, snap.CommandsAbsent)
	}
	if snap.HasHooksFile {
		t.Error("HasHooksFile = true for tree without hooks file")
	}
}

func TestLoaderHooksFileLocations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
	}{
		{"hooks dir", "hooks/hooks.json"},
		{"claude-plugin dir", ".claude-plugin/hooks.json"},
		{"claude dir", ".claude/hooks.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap, err := NewLoader(nil).Load(context.Background(), fstest.MapFS{
				tt.path: {Data: []byte("{}")},
			})
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if !snap.HasHooksFile {
				t.Errorf("HasHooksFile = false for %s", tt.path)
			}
		})
	}
}

func TestLoaderCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewLoader(nil).Load(ctx, fstest.MapFS{}); err == nil {
		t.Error("Load() with cancelled context returned nil error")
	}
}

func TestRepresentativeFiles(t *testing.T) {
	t.Parallel()

	snap := &Snapshot{
		Skills: []Skill{
			{Name: "a", HasEntry: true, Entry: File{Path: "skills/a/SKILL.md", Content: "x"}},
			{Name: "b", HasEntry: false},
		},
		Agents:   []File{{Path: "agents/x.md", Content: "y"}},
		Commands: []File{{Path: "commands/y.md", Content: "z"}},
	}

	files := snap.RepresentativeFiles()
	if len(files) != 3 {
		t.Fatalf("len(RepresentativeFiles()) = %d, want 3 (entry-less skill skipped)", len(files))
	}
	if files[0].Path != "skills/a/SKILL.md" {
		t.Errorf("files[0].Path = %q, want skill entry first", files[0].Path)
	}
}
