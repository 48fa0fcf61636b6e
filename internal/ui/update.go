package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/shelf/internal/form"
)

// Update handles all messages for the application.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeys(msg)

	case ActionMsg:
		a.runAction(msg.Action)
		return a, nil

	case SelectRowMsg:
		a.selectRow(msg.Index)
		return a, nil
	}

	// Cursor blink and other component messages.
	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

// handleKeys routes a key press to a global binding or the focused pane.
func (a App) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a.quit()
	}

	if action, ok := a.globalAction(msg); ok {
		a.runAction(action)
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Tab):
		return a, a.setFocus(a.focus + 1)
	case key.Matches(msg, a.keys.ShiftTab):
		return a, a.setFocus(a.focus - 1)
	}

	if a.focus == focusTable {
		return a.handleTableKeys(msg)
	}
	return a.handleFormKeys(msg)
}

// globalAction maps the bindings that work from any pane.
func (a App) globalAction(msg tea.KeyMsg) (form.Action, bool) {
	switch {
	case key.Matches(msg, a.keys.Add):
		return form.ActionAdd, true
	case key.Matches(msg, a.keys.Update):
		return form.ActionUpdate, true
	case key.Matches(msg, a.keys.Delete):
		return form.ActionDelete, true
	case key.Matches(msg, a.keys.Clear):
		return form.ActionClear, true
	}
	return 0, false
}

// handleTableKeys handles keys when the table is focused.
func (a App) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	case key.Matches(msg, a.keys.TableAdd):
		a.runAction(form.ActionAdd)
		return a, nil
	case key.Matches(msg, a.keys.TableUpdate):
		a.runAction(form.ActionUpdate)
		return a, nil
	case key.Matches(msg, a.keys.TableDelete):
		a.runAction(form.ActionDelete)
		return a, nil
	case key.Matches(msg, a.keys.TableClear):
		a.runAction(form.ActionClear)
		return a, nil
	case key.Matches(msg, a.keys.Select):
		if cursor := a.table.Cursor(); cursor >= 0 {
			a.selectRow(cursor)
		}
		return a, nil
	case key.Matches(msg, a.keys.Deselect):
		a.selectRow(form.NoSelection)
		return a, nil
	}

	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

// handleFormKeys handles keys when a form field is focused.
func (a App) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return a, a.setFocus(a.focus + 1)
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	a.syncFields()
	return a, cmd
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.quitting = true
	a.logger.Info("ui stopped", "books", len(a.controller.Rows()))
	return a, tea.Quit
}
