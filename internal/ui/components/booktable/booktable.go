// Package booktable provides the read-only book table component.
package booktable

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/shelf/internal/model"
	"github.com/lazyvibe/shelf/internal/ui/styles"
)

// Column width weights, in model.Columns order.
var weights = []int{35, 30, 10, 25}

// Model wraps a bubbles table with Shelf's panel chrome.
type Model struct {
	table   table.Model
	books   []model.Book
	focused bool
	width   int
	height  int
}

// New creates an empty table.
func New() Model {
	t := table.New(
		table.WithColumns(columns(80)),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Border).
		BorderBottom(true).
		Foreground(styles.TextCol).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(styles.TextCol).
		Background(styles.SurfaceCol).
		Bold(true)
	t.SetStyles(s)

	return Model{table: t}
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	// Border (2) + title (1) + table header with its rule (2).
	rows := height - 5
	if rows < 1 {
		rows = 1
	}
	m.table.SetColumns(columns(width - 4))
	m.table.SetHeight(rows)
}

// SetFocused updates the focus state.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
	if focused {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

// Focused reports whether the table has focus.
func (m Model) Focused() bool {
	return m.focused
}

// SetBooks replaces the displayed rows with books, in order.
func (m *Model) SetBooks(books []model.Book) {
	m.books = append([]model.Book(nil), books...)
	rows := make([]table.Row, len(books))
	for i, b := range books {
		rows[i] = table.Row(b.Values())
	}
	m.table.SetRows(rows)
	switch c := m.table.Cursor(); {
	case len(rows) == 0:
	case c >= len(rows):
		m.table.SetCursor(len(rows) - 1)
	case c < 0:
		m.table.SetCursor(0)
	}
}

// Books returns the rows currently displayed.
func (m Model) Books() []model.Book {
	out := make([]model.Book, len(m.books))
	copy(out, m.books)
	return out
}

// Cursor returns the highlighted row, or -1 when the table is empty.
func (m Model) Cursor() int {
	if len(m.books) == 0 {
		return -1
	}
	return m.table.Cursor()
}

// SetCursor moves the highlight to row n.
func (m *Model) SetCursor(n int) {
	m.table.SetCursor(n)
}

// Update handles navigation while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table panel.
func (m Model) View() string {
	title := styles.PanelTitle.Render("Books")
	if m.focused {
		title = styles.PanelTitleFocused.Render("Books")
	}
	header := styles.PanelTitleIcon.Render("☰") + title + " " + styles.Dim.Render(fmt.Sprintf("(%d)", len(m.books)))

	body := m.table.View()
	if len(m.books) == 0 {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.table.View(),
			styles.Placeholder.Render("No books yet. Fill in the form and press F1 to add one."),
		)
	}

	border := styles.BorderStyle
	if m.focused {
		border = styles.FocusedBorderStyle
	}
	if m.width > 2 {
		border = border.Width(m.width - 2)
	}
	if m.height > 2 {
		border = border.Height(m.height - 2)
	}
	return border.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// columns splits width across the book columns by weight.
func columns(width int) []table.Column {
	// Each cell carries one column of padding on both sides.
	usable := width - 2*len(model.Columns)
	if usable < len(model.Columns)*4 {
		usable = len(model.Columns) * 4
	}
	cols := make([]table.Column, len(model.Columns))
	remaining := usable
	for i, name := range model.Columns {
		w := usable * weights[i] / 100
		if i == len(model.Columns)-1 {
			w = remaining
		}
		remaining -= w
		cols[i] = table.Column{Title: name, Width: w}
	}
	return cols
}
