// Package keys defines keyboard shortcuts for the Shelf TUI.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding

	// Form actions, available everywhere
	Add    key.Binding
	Update key.Binding
	Delete key.Binding
	Clear  key.Binding

	// Table-only shortcuts
	TableAdd    key.Binding
	TableUpdate key.Binding
	TableDelete key.Binding
	TableClear  key.Binding
	Select      key.Binding
	Deselect    key.Binding

	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default keyboard shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Add: key.NewBinding(
			key.WithKeys("alt+a", "f1"),
			key.WithHelp("F1/Alt+a", "add"),
		),
		Update: key.NewBinding(
			key.WithKeys("alt+u", "f2"),
			key.WithHelp("F2/Alt+u", "update"),
		),
		Delete: key.NewBinding(
			key.WithKeys("alt+d", "f3"),
			key.WithHelp("F3/Alt+d", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("alt+c", "f4"),
			key.WithHelp("F4/Alt+c", "clear"),
		),
		TableAdd: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		TableUpdate: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "update"),
		),
		TableDelete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		TableClear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit row"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "deselect"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the hints shown while a form field has focus.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Tab,
		k.Add,
		k.Update,
		k.Delete,
		k.Clear,
		k.ForceQuit,
	}
}

// TableHelp returns the hints shown while the table has focus.
func (k KeyMap) TableHelp() []key.Binding {
	return []key.Binding{
		k.Up,
		k.Down,
		k.Select,
		k.Deselect,
		k.TableAdd,
		k.TableUpdate,
		k.TableDelete,
		k.TableClear,
		k.Quit,
	}
}
