// Package statusbar provides the status bar UI component.
package statusbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/shelf/internal/ui/styles"
)

// Model is the status bar component.
type Model struct {
	width    int
	title    string
	message  string
	isError  bool
	bindings []key.Binding
	help     help.Model
}

// New creates a new status bar component.
func New() Model {
	h := help.New()
	h.ShortSeparator = " "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(styles.Accent).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(styles.Overlay0)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(styles.Overlay0)
	return Model{help: h}
}

// SetWidth updates the status bar width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetBindings sets the key hints shown on the right.
func (m *Model) SetBindings(bindings []key.Binding) {
	m.bindings = bindings
}

// SetMessage sets an informational message.
func (m *Model) SetMessage(msg string) {
	m.title = ""
	m.message = msg
	m.isError = false
}

// SetWarning sets a titled warning, e.g. "Input Error".
func (m *Model) SetWarning(title, msg string) {
	m.title = title
	m.message = msg
	m.isError = true
}

// ClearMessage clears the current message.
func (m *Model) ClearMessage() {
	m.title = ""
	m.message = ""
	m.isError = false
}

// Message returns the text currently shown, including any warning title.
func (m Model) Message() string {
	if m.title != "" {
		return m.title + ": " + m.message
	}
	return m.message
}

// IsError reports whether the current message is a warning.
func (m Model) IsError() bool {
	return m.isError
}

// View renders the status bar.
func (m Model) View() string {
	brand := styles.StatusBarBrand.Render(" Shelf ")
	hints := m.help.ShortHelpView(m.bindings)

	var msgArea string
	if text := m.Message(); text != "" {
		msgStyle := styles.StatusBarInfo
		if m.isError {
			msgStyle = styles.StatusBarError
		}
		avail := m.width - lipgloss.Width(brand) - lipgloss.Width(hints) - 2
		if avail < 10 {
			// Drop the hints before the message.
			hints = ""
			avail = m.width - lipgloss.Width(brand) - 2
		}
		msgArea = msgStyle.Render(" " + styles.TruncateWithEllipsis(text, avail) + " ")
	}

	used := lipgloss.Width(brand) + lipgloss.Width(msgArea) + lipgloss.Width(hints)
	padding := m.width - used
	if padding < 0 {
		padding = 0
	}

	content := brand + msgArea + strings.Repeat(" ", padding) + hints
	return styles.StatusBarStyle.
		Width(m.width).
		MaxHeight(1).
		Render(content)
}
