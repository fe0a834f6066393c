// Package cli provides the Cobra command tree and dependency wiring
// for the clawlint CLI. This file defines the Dependencies struct
// (composition root) that wires the domain packages together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/clawlint/clawlint/internal/component"
	"github.com/clawlint/clawlint/internal/config"
	"github.com/clawlint/clawlint/internal/enforcement"
	"github.com/clawlint/clawlint/internal/manifest"
	"github.com/clawlint/clawlint/internal/scaffold"
	"github.com/clawlint/clawlint/internal/tree"
	"github.com/clawlint/clawlint/internal/ui"
)

// Dependencies holds the domain-level services used by CLI commands.
// This is the composition root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config     *config.Config
	Loader     *tree.Loader
	Manifest   *manifest.Validator
	Components *component.Validator
	Hookify    *enforcement.PolicyChecker
	Scaffolder scaffold.Scaffolder
	Detector   *ui.Detector
	Logger     *slog.Logger
}

// deps is the global dependencies instance, initialized by
// InitDependencies. CLI commands access it through this variable.
var deps *Dependencies

// InitDependencies creates the base dependencies. Services that need a
// tree root and its configuration (the validators) are initialized
// lazily by EnsureLint once the root is known.
func InitDependencies() {
	// Quiet by default; --verbose swaps in a stderr handler.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	deps = &Dependencies{
		Detector:   ui.NewDetector(),
		Scaffolder: scaffold.NewScaffolder(logger),
		Logger:     logger,
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// EnableVerbose switches the logger to Debug output on stderr. Call it
// before EnsureLint so the validators pick up the verbose logger.
func (d *Dependencies) EnableVerbose() {
	d.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	d.Scaffolder = scaffold.NewScaffolder(d.Logger)
}

// EnsureLint lazily loads the configuration for root and builds the
// validation services. Subsequent calls are no-ops.
func (d *Dependencies) EnsureLint(root string) error {
	if d.Manifest != nil {
		return nil
	}
	cfg, err := config.Load(root)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	d.Config = cfg
	d.Loader = tree.NewLoader(d.Logger)
	d.Manifest = manifest.NewValidator(d.Logger)
	d.Components = component.NewValidator(cfg.Lint.WordBudget, d.Logger)
	d.Hookify = enforcement.NewPolicyChecker(cfg.Lint.Keywords, d.Logger)
	return nil
}
