package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer formats an aggregated result as a terminal report: counts,
// every error, every warning, then a single status line.
type Renderer struct {
	noColor    bool
	headStyle  lipgloss.Style
	errorStyle lipgloss.Style
	warnStyle  lipgloss.Style
	passStyle  lipgloss.Style
	mutedStyle lipgloss.Style
}

// NewRenderer creates a Renderer. With noColor set, all styling is
// disabled and the output is plain text.
func NewRenderer(noColor bool) *Renderer {
	r := &Renderer{noColor: noColor}

	if noColor {
		return r
	}

	r.headStyle = lipgloss.NewStyle().Bold(true)
	r.errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	r.warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	r.passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	r.mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	return r
}

// Render produces the full report for an aggregated result. root labels
// the validated tree and may be empty.
func (r *Renderer) Render(root string, res *Result) string {
	var b strings.Builder

	b.WriteString(r.headStyle.Render("PLUGIN VALIDATION"))
	b.WriteString("\n")
	if root != "" {
		b.WriteString(r.mutedStyle.Render(fmt.Sprintf("Root: %s", root)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(res.Errors) > 0 {
		b.WriteString(r.headStyle.Render("ERRORS:"))
		b.WriteString("\n")
		for _, f := range res.Errors {
			r.writeFinding(&b, r.errorStyle, f)
		}
		b.WriteString("\n")
	}

	if len(res.Warnings) > 0 {
		b.WriteString(r.headStyle.Render("WARNINGS:"))
		b.WriteString("\n")
		for _, f := range res.Warnings {
			r.writeFinding(&b, r.warnStyle, f)
		}
		b.WriteString("\n")
	}

	b.WriteString(r.headStyle.Render("SUMMARY:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Errors:   %d\n", len(res.Errors)))
	b.WriteString(fmt.Sprintf("  Warnings: %d\n", len(res.Warnings)))
	b.WriteString(fmt.Sprintf("  Passed:   %d\n", len(res.Passed)))
	b.WriteString("\n")

	b.WriteString(r.statusLine(res.Status()))
	b.WriteString("\n")

	return b.String()
}

// writeFinding emits one finding with its code tag, indenting every
// continuation line of a multi-line message.
func (r *Renderer) writeFinding(b *strings.Builder, style lipgloss.Style, f Finding) {
	tag := ""
	if f.Code != "" {
		tag = style.Render(fmt.Sprintf("[%s]", f.Code)) + " "
	}

	lines := strings.Split(f.Message, "\n")
	b.WriteString(fmt.Sprintf("  %s%s", tag, lines[0]))
	if f.File != "" {
		b.WriteString(r.mutedStyle.Render(fmt.Sprintf(" (%s)", f.File)))
	}
	b.WriteString("\n")

	for _, line := range lines[1:] {
		b.WriteString("       ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	if f.Hint != "" {
		b.WriteString("       ")
		b.WriteString(r.mutedStyle.Render(f.Hint))
		b.WriteString("\n")
	}
}

func (r *Renderer) statusLine(s Status) string {
	switch s {
	case StatusFail:
		return "STATUS: " + r.errorStyle.Render("[FAIL] errors found")
	case StatusWarn:
		return "STATUS: " + r.warnStyle.Render("[WARN] warnings")
	default:
		return "STATUS: " + r.passStyle.Render("[PASS] ready")
	}
}
