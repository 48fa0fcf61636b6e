// Package styles defines the visual appearance for the Shelf TUI.
// Colors follow the Catppuccin Mocha palette.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Catppuccin Mocha colors in use.
var (
	Mauve    = lipgloss.Color("#CBA6F7")
	Red      = lipgloss.Color("#F38BA8")
	Peach    = lipgloss.Color("#FAB387")
	Green    = lipgloss.Color("#A6E3A1")
	Sapphire = lipgloss.Color("#74C7EC")

	Text     = lipgloss.Color("#CDD6F4")
	Subtext0 = lipgloss.Color("#A6ADC8")
	Overlay0 = lipgloss.Color("#6C7086")
	Surface1 = lipgloss.Color("#45475A")
	Surface0 = lipgloss.Color("#313244")
	Base     = lipgloss.Color("#1E1E2E")
	Mantle   = lipgloss.Color("#181825")
)

// Semantic colors
var (
	Primary     = Mauve
	Accent      = Sapphire
	Danger      = Red
	Warning     = Peach
	Success     = Green
	SurfaceCol  = Surface0
	TextCol     = Text
	TextMuted   = Subtext0
	Border      = Surface1
	BorderFocus = Mauve
)

var (
	// BorderStyle for panels
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border)

	// FocusedBorderStyle for focused panels
	FocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BorderFocus)
)

// Panel styles
var (
	PanelTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextCol).
			Padding(0, 1)

	PanelTitleFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(Primary).
				Padding(0, 1)

	PanelTitleIcon = lipgloss.NewStyle().
			Foreground(Accent).
			MarginRight(1)

	Placeholder = lipgloss.NewStyle().
			Foreground(TextMuted).
			Italic(true)

	Dim = lipgloss.NewStyle().
		Foreground(TextMuted)
)

// Form field styles
var (
	FieldLabel = lipgloss.NewStyle().
			Foreground(TextMuted)

	FieldLabelFocused = lipgloss.NewStyle().
				Foreground(Primary).
				Bold(true)

	FieldInput = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1)

	FieldInputFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary).
				Padding(0, 1)

	EditingBadge = lipgloss.NewStyle().
			Foreground(Base).
			Background(Warning).
			Bold(true).
			Padding(0, 1)
)

// StatusBar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Background(Mantle)

	StatusBarBrand = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	StatusBarInfo = lipgloss.NewStyle().
			Foreground(Success)

	StatusBarError = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)
)

// TruncateWithEllipsis shortens s to at most maxWidth cells, ANSI-aware.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return ansi.Truncate(s, maxWidth, "")
	}
	return ansi.Truncate(s, maxWidth, "...")
}
