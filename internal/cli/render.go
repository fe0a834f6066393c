package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Card styles shared by CLI commands for structured terminal output.
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	cardKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// kvPair is one key/value row in a card body.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines formats pairs as aligned key/value lines.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('\n')
		}
		key := cardKeyStyle.Render(fmt.Sprintf("%-*s", width, p.key))
		b.WriteString(key + "  " + p.value)
	}
	return b.String()
}

// renderCard draws a bordered card with a title line and body.
func renderCard(title, body string) string {
	content := cardTitleStyle.Render(title)
	if body != "" {
		content += "\n" + body
	}
	return cardStyle.Render(content)
}

// renderInfoCard draws a card holding a single informational message.
func renderInfoCard(title, message string) string {
	return renderCard(title, message)
}
