// Package tree loads a plugin tree snapshot from an fs.FS. It is the
// only place component documents are read from disk; validators consume
// the already-loaded text, so tests substitute fstest.MapFS fixtures.
package tree

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/clawlint/clawlint/internal/defs"
)

// File is one loaded component document.
type File struct {
	Path    string
	Content string
}

// Skill is one skill directory and its entry document.
type Skill struct {
	Name          string
	Dir           string
	Entry         File
	HasEntry      bool
	HasReferences bool
}

// Snapshot is the loaded view of a plugin tree that the component and
// policy validators operate on.
type Snapshot struct {
	Skills   []Skill
	Agents   []File
	Commands []File

	SkillsAbsent   bool
	AgentsAbsent   bool
	CommandsAbsent bool

	// HasHooksFile reports whether an enforcement-mechanism file exists
	// at any of its known locations.
	HasHooksFile bool
}

// HooksFileLocations are the paths probed for the enforcement-mechanism
// configuration file, in order.
var HooksFileLocations = []string{
	defs.HooksDir + "/" + defs.HooksJSON,
	defs.ClaudePluginDir + "/" + defs.HooksJSON,
	defs.ClaudeDir + "/" + defs.HooksJSON,
}

// Loader reads plugin trees.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader. logger may be nil.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger}
}

// Load reads the skills, agents, and commands trees plus the hooks file
// probe. Directories that do not exist are recorded as absent, not
// errors; unreadable individual files abort the load.
func (l *Loader) Load(ctx context.Context, fsys fs.FS) (*Snapshot, error) {
	snap := &Snapshot{}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	skills, absent, err := l.loadSkills(fsys)
	if err != nil {
		return nil, err
	}
	snap.Skills, snap.SkillsAbsent = skills, absent

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap.Agents, snap.AgentsAbsent, err = l.loadMarkdownDir(fsys, defs.AgentsDir)
	if err != nil {
		return nil, err
	}
	snap.Commands, snap.CommandsAbsent, err = l.loadMarkdownDir(fsys, defs.CommandsDir)
	if err != nil {
		return nil, err
	}

	for _, loc := range HooksFileLocations {
		if _, err := fs.Stat(fsys, loc); err == nil {
			snap.HasHooksFile = true
			break
		}
	}

	l.logger.Debug("tree loaded",
		"skills", len(snap.Skills),
		"agents", len(snap.Agents),
		"commands", len(snap.Commands),
		"hooks_file", snap.HasHooksFile)

	return snap, nil
}

func (l *Loader) loadSkills(fsys fs.FS) ([]Skill, bool, error) {
	entries, err := fs.ReadDir(fsys, defs.SkillsDir)
	if err != nil {
		return nil, true, nil
	}

	var skills []Skill
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := path.Join(defs.SkillsDir, entry.Name())
		skill := Skill{Name: entry.Name(), Dir: dir}

		entryPath := path.Join(dir, defs.SkillFile)
		if content, err := fs.ReadFile(fsys, entryPath); err == nil {
			skill.Entry = File{Path: entryPath, Content: string(content)}
			skill.HasEntry = true
		}

		if info, err := fs.Stat(fsys, path.Join(dir, defs.ReferencesDir)); err == nil && info.IsDir() {
			skill.HasReferences = true
		}

		skills = append(skills, skill)
	}
	return skills, false, nil
}

func (l *Loader) loadMarkdownDir(fsys fs.FS, dir string) ([]File, bool, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, true, nil
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), defs.MarkdownExt) {
			continue
		}
		p := path.Join(dir, entry.Name())
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, false, fmt.Errorf("tree: read %s: %w", p, err)
		}
		files = append(files, File{Path: p, Content: string(content)})
	}
	return files, false, nil
}

// RepresentativeFiles returns the scan set for enforcement checks: each
// skill's entry document plus every agent and command document.
func (s *Snapshot) RepresentativeFiles() []File {
	var files []File
	for _, skill := range s.Skills {
		if skill.HasEntry {
			files = append(files, skill.Entry)
		}
	}
	files = append(files, s.Agents...)
	files = append(files, s.Commands...)
	return files
}

// SkillNames returns the names of skill directories carrying an entry
// document, for cross-reference checks.
func (s *Snapshot) SkillNames() []string {
	var names []string
	for _, skill := range s.Skills {
		if skill.HasEntry {
			names = append(names, skill.Name)
		}
	}
	return names
}
