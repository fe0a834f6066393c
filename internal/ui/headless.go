// Package ui decides how the CLI talks to the terminal: headless
// detection and the progress spinner shown while validation runs.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Detector reports whether the CLI should run without interactive
// output. Detection follows the TTY state of stdout, with an optional
// override for flags like --quiet.
type Detector struct {
	forced *bool
}

// NewDetector creates a Detector using automatic TTY detection.
func NewDetector() *Detector {
	return &Detector{}
}

// Headless returns true when interactive output should be suppressed.
func (d *Detector) Headless() bool {
	if d.forced != nil {
		return *d.forced
	}
	fd := os.Stdout.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// Force overrides TTY detection. Pass true to force headless mode,
// false to force interactive mode.
func (d *Detector) Force(headless bool) {
	d.forced = &headless
}

// Reset reverts to automatic TTY detection.
func (d *Detector) Reset() {
	d.forced = nil
}
