// Package scaffold writes stub component files into a plugin tree:
// a skill directory with SKILL.md and its support directories, or a
// single markdown document for agents and commands.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/clawlint/clawlint/internal/defs"
)

// Component kinds the scaffolder can create.
const (
	KindSkill   = "skill"
	KindAgent   = "agent"
	KindCommand = "command"
)

// Skill types. The type decides the default tool list and which
// support directories the stub gets.
const (
	SkillKnowledge = "knowledge"
	SkillHybrid    = "hybrid"
	SkillTool      = "tool"
	SkillExpert    = "expert"
)

// Sentinel errors for scaffolding operations.
var (
	ErrBadKind      = errors.New("scaffold: unknown component kind")
	ErrBadSkillType = errors.New("scaffold: unknown skill type")
	ErrBadName      = errors.New("scaffold: component name must be kebab-case")
	ErrExists       = errors.New("scaffold: component already exists")
)

var kebabExpr = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// skillTypeConfig carries the per-type defaults.
type skillTypeConfig struct {
	tools []string
	dirs  []string
}

var skillTypes = map[string]skillTypeConfig{
	SkillKnowledge: {
		tools: []string{"Read", "Grep", "Glob"},
		dirs:  []string{"references"},
	},
	SkillHybrid: {
		tools: []string{"Read", "Write", "Grep", "Glob", "Bash"},
		dirs:  []string{"references", "scripts"},
	},
	SkillTool: {
		tools: []string{"Read", "Write", "Bash"},
		dirs:  []string{"scripts", "references"},
	},
	SkillExpert: {
		tools: []string{"Read", "Write", "Bash"},
		dirs:  []string{"scripts", "scripts/validation", "references", "assets/templates", "assets/examples"},
	},
}

// SkillTypeNames returns the accepted skill type names in display order.
func SkillTypeNames() []string {
	return []string{SkillKnowledge, SkillHybrid, SkillTool, SkillExpert}
}

// Request describes the component to create.
type Request struct {
	Kind        string
	Name        string
	Description string

	// SkillType is consulted only when Kind is KindSkill. Empty means
	// SkillKnowledge.
	SkillType string
}

// Scaffolder writes component stubs into a tree root.
type Scaffolder interface {
	// Create writes the stub for req under root and returns the paths
	// created, relative to root.
	Create(ctx context.Context, root string, req Request) ([]string, error)
}

type scaffolder struct {
	logger *slog.Logger
}

// NewScaffolder creates a Scaffolder. A nil logger discards output.
func NewScaffolder(logger *slog.Logger) Scaffolder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &scaffolder{logger: logger}
}

func (s *scaffolder) Create(ctx context.Context, root string, req Request) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !kebabExpr.MatchString(req.Name) {
		return nil, fmt.Errorf("%w: %q", ErrBadName, req.Name)
	}

	switch req.Kind {
	case KindSkill:
		return s.createSkill(root, req)
	case KindAgent:
		return s.createDocument(root, defs.AgentsDir, req.Name, renderAgentStub(req))
	case KindCommand:
		return s.createDocument(root, defs.CommandsDir, req.Name, renderCommandStub(req))
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadKind, req.Kind)
	}
}

// createSkill writes skills/<name>/SKILL.md plus the type's support
// directories, each seeded with a .gitkeep so empty directories survive
// version control.
func (s *scaffolder) createSkill(root string, req Request) ([]string, error) {
	skillType := req.SkillType
	if skillType == "" {
		skillType = SkillKnowledge
	}
	cfg, ok := skillTypes[skillType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadSkillType, skillType)
	}

	dir := filepath.Join(defs.SkillsDir, req.Name)
	if err := checkAbsent(root, dir); err != nil {
		return nil, err
	}

	var created []string
	entry := filepath.Join(dir, defs.SkillFile)
	if err := writeFile(root, entry, renderSkillStub(req, cfg.tools)); err != nil {
		return nil, err
	}
	created = append(created, entry)

	for _, sub := range cfg.dirs {
		keep := filepath.Join(dir, filepath.FromSlash(sub), ".gitkeep")
		if err := writeFile(root, keep, ""); err != nil {
			return nil, err
		}
		created = append(created, keep)
	}

	s.logger.Info("skill scaffolded", "name", req.Name, "type", skillType, "files", len(created))
	return created, nil
}

// createDocument writes a single markdown stub under parent.
func (s *scaffolder) createDocument(root, parent, name, content string) ([]string, error) {
	rel := filepath.Join(parent, name+defs.MarkdownExt)
	if err := checkAbsent(root, rel); err != nil {
		return nil, err
	}
	if err := writeFile(root, rel, content); err != nil {
		return nil, err
	}
	s.logger.Info("component scaffolded", "path", rel)
	return []string{rel}, nil
}

// checkAbsent fails when rel already exists under root.
func checkAbsent(root, rel string) error {
	if _, err := os.Stat(filepath.Join(root, rel)); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, rel)
	}
	return nil
}

// writeFile creates rel under root, making parent directories as
// needed. The path is checked for containment first.
func writeFile(root, rel, content string) error {
	if err := validatePath(root, rel); err != nil {
		return err
	}
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("scaffold mkdir %q: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// validatePath ensures rel cannot escape root.
func validatePath(root, rel string) error {
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrBadName, rel)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrBadName, rel)
	}
	return nil
}
