// Package bookform provides the four-field book entry form.
package bookform

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/shelf/internal/model"
	"github.com/lazyvibe/shelf/internal/ui/styles"
)

// Field placeholders, in model.Columns order.
var placeholders = []string{"Clean Code", "Robert Martin", "2008", "9780132350884"}

// Model is the form component. It only holds what the user typed; the
// form controller decides what the values mean.
type Model struct {
	inputs     []textinput.Model
	labels     []string
	focusIndex int
	focused    bool
	width      int
	editing    string
}

// New creates a form with one text input per book column.
func New(charLimit int) Model {
	inputs := make([]textinput.Model, len(model.Columns))
	labels := make([]string, len(model.Columns))
	for i, col := range model.Columns {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = charLimit
		ti.Width = 24
		inputs[i] = ti
		labels[i] = col
	}
	return Model{
		inputs: inputs,
		labels: labels,
	}
}

// FieldCount returns the number of inputs.
func (m Model) FieldCount() int {
	return len(m.inputs)
}

// SetWidth updates the component width and resizes the inputs.
func (m *Model) SetWidth(width int) {
	m.width = width
	// Two columns of inputs, each with a border and padding.
	w := (width-4)/2 - 6
	if w < 8 {
		w = 8
	}
	for i := range m.inputs {
		m.inputs[i].Width = w
	}
}

// Focus focuses the input at index.
func (m *Model) Focus(index int) tea.Cmd {
	if index < 0 || index >= len(m.inputs) {
		return nil
	}
	m.focused = true
	m.focusIndex = index
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == index {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

// Blur removes focus from every input.
func (m *Model) Blur() {
	m.focused = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// Focused reports whether an input has focus.
func (m Model) Focused() bool {
	return m.focused
}

// FocusIndex returns the input that has, or last had, focus.
func (m Model) FocusIndex() int {
	return m.focusIndex
}

// SetValues overwrites the inputs, in model.Columns order.
func (m *Model) SetValues(values []string) {
	for i := range m.inputs {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		m.inputs[i].SetValue(v)
		m.inputs[i].CursorEnd()
	}
}

// Values returns the raw input values.
func (m Model) Values() []string {
	values := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		values[i] = input.Value()
	}
	return values
}

// SetEditing shows a badge naming the record being edited. Empty hides it.
func (m *Model) SetEditing(label string) {
	m.editing = label
}

// Update forwards messages to the focused input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

// View renders the form as a two-by-two grid inside a panel.
func (m Model) View() string {
	cells := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		labelStyle := styles.FieldLabel
		inputStyle := styles.FieldInput
		if m.focused && i == m.focusIndex {
			labelStyle = styles.FieldLabelFocused
			inputStyle = styles.FieldInputFocused
		}
		cells[i] = lipgloss.JoinVertical(
			lipgloss.Left,
			labelStyle.Render(m.labels[i]),
			inputStyle.Render(input.View()),
		)
	}

	var rows []string
	for i := 0; i < len(cells); i += 2 {
		if i+1 < len(cells) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i], "  ", cells[i+1]))
		} else {
			rows = append(rows, cells[i])
		}
	}

	title := styles.PanelTitle.Render("Book")
	if m.focused {
		title = styles.PanelTitleFocused.Render("Book")
	}
	header := styles.PanelTitleIcon.Render("✎") + title
	if m.editing != "" {
		avail := m.width - lipgloss.Width(header) - 8
		header += " " + styles.EditingBadge.Render("editing "+styles.TruncateWithEllipsis(m.editing, avail))
	}

	border := styles.BorderStyle
	if m.focused {
		border = styles.FocusedBorderStyle
	}
	body := lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, rows...)...)
	if m.width > 2 {
		border = border.Width(m.width - 2)
	}
	return border.Render(body)
}
