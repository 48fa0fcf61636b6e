package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/shelf/internal/ui/styles"
)

// View renders the entire application.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	if !a.ready {
		return styles.PanelTitleFocused.Render("Loading Shelf...")
	}

	if a.windowTooSmall() {
		msg := fmt.Sprintf("Window too small, need at least %dx%d (now %dx%d)", minAppWidth, minAppHeight, a.width, a.height)
		notice := lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Accent).
			Render(msg)
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(notice)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		a.form.View(),
		a.table.View(),
		a.statusBar.View(),
	)
}
