package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner shows progress while a long operation runs. The interactive
// form animates; the headless form prints one log line per title.
type Spinner interface {
	// SetTitle replaces the text shown next to the spinner.
	SetTitle(title string)

	// Stop halts the spinner. Safe to call more than once.
	Stop()
}

// NewSpinner creates a Spinner appropriate for the environment.
// Headless or no-color environments get plain log lines on w.
func NewSpinner(title string, d *Detector, noColor bool, w io.Writer) Spinner {
	if w == nil {
		w = os.Stdout
	}
	if d.Headless() || noColor {
		return newLogSpinner(title, w)
	}
	return newTeaSpinner(title, noColor)
}

// --- animated spinner ---

type spinnerTitleMsg string

type spinnerStopMsg struct{}

type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(title string, noColor bool) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !noColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

type teaSpinner struct {
	program *tea.Program
	once    sync.Once
}

func newTeaSpinner(title string, noColor bool) *teaSpinner {
	p := tea.NewProgram(newSpinnerModel(title, noColor))
	s := &teaSpinner{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return s
}

func (s *teaSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

func (s *teaSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}

// --- log-line spinner ---

type logSpinner struct {
	writer  io.Writer
	stopped bool
}

func newLogSpinner(title string, w io.Writer) *logSpinner {
	s := &logSpinner{writer: w}
	_, _ = fmt.Fprintln(w, title)
	return s
}

func (s *logSpinner) SetTitle(title string) {
	if s.stopped {
		return
	}
	_, _ = fmt.Fprintln(s.writer, title)
}

func (s *logSpinner) Stop() {
	s.stopped = true
}
