package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/shelf/internal/app"
	"github.com/lazyvibe/shelf/internal/form"
	"github.com/lazyvibe/shelf/internal/model"
	"github.com/lazyvibe/shelf/internal/ui/components/bookform"
	"github.com/lazyvibe/shelf/internal/ui/components/booktable"
	"github.com/lazyvibe/shelf/internal/ui/components/statusbar"
	"github.com/lazyvibe/shelf/internal/ui/keys"
)

const (
	minAppWidth  = 40
	minAppHeight = 16
)

// focusTable is the focus position after the last form field.
const focusTable = form.FieldCount

// App is the main application model.
type App struct {
	// Components
	form      bookform.Model
	table     booktable.Model
	statusBar statusbar.Model

	// State
	focus    int // 0..FieldCount-1 is a form field, focusTable is the table
	width    int
	height   int
	ready    bool
	quitting bool

	// Dependencies
	controller *form.Controller
	keys       keys.KeyMap
	logger     *slog.Logger
}

// New creates a new application instance.
func New(c *form.Controller, cfg *app.Config, logger *slog.Logger) App {
	if cfg == nil {
		cfg = app.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a := App{
		form:       bookform.New(cfg.CharLimit),
		table:      booktable.New(),
		statusBar:  statusbar.New(),
		controller: c,
		keys:       keys.DefaultKeyMap(),
		logger:     logger,
	}
	a.setFocus(0)
	a.refresh()
	return a
}

// Init initializes the application.
func (a App) Init() tea.Cmd {
	a.logger.Info("ui started", "books", len(a.controller.Rows()))
	return textinput.Blink
}

// Focus returns the focus position: a form.Field index, or form.FieldCount
// for the table.
func (a App) Focus() int {
	return a.focus
}

// Controller returns the form controller backing the app.
func (a App) Controller() *form.Controller {
	return a.controller
}

// TableBooks returns the rows the table is displaying.
func (a App) TableBooks() []model.Book {
	return a.table.Books()
}

// FormValues returns the raw values in the form inputs.
func (a App) FormValues() []string {
	return a.form.Values()
}

// StatusMessage returns the status bar text and whether it is a warning.
func (a App) StatusMessage() (string, bool) {
	return a.statusBar.Message(), a.statusBar.IsError()
}

// SetSize updates the window dimensions.
func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	a.statusBar.SetWidth(width)
	a.form.SetWidth(width)
	formHeight := lipgloss.Height(a.form.View())
	tableHeight := height - formHeight - 1
	if tableHeight < 6 {
		tableHeight = 6
	}
	a.table.SetSize(width, tableHeight)
}

func (a App) windowTooSmall() bool {
	return a.width < minAppWidth || a.height < minAppHeight
}

// setFocus moves focus to pos, wrapping around the form fields and table.
func (a *App) setFocus(pos int) tea.Cmd {
	n := focusTable + 1
	pos = ((pos % n) + n) % n
	a.focus = pos

	var cmd tea.Cmd
	if pos == focusTable {
		a.form.Blur()
		a.table.SetFocused(true)
		a.statusBar.SetBindings(a.keys.TableHelp())
	} else {
		a.table.SetFocused(false)
		cmd = a.form.Focus(pos)
		a.statusBar.SetBindings(a.keys.ShortHelp())
	}
	return cmd
}

// runAction dispatches a form action and reports the outcome.
func (a *App) runAction(action form.Action) {
	a.syncFields()
	err := a.controller.Dispatch(action)
	a.refresh()
	if err != nil {
		title, msg := describeError(action, err)
		a.statusBar.SetWarning(title, msg)
		return
	}
	switch action {
	case form.ActionAdd:
		a.statusBar.SetMessage("Book added")
	case form.ActionUpdate:
		a.statusBar.SetMessage("Book updated")
	case form.ActionDelete:
		a.statusBar.SetMessage("Book deleted")
	case form.ActionClear:
		a.statusBar.SetMessage("Fields cleared")
	}
}

// selectRow applies a table selection change.
func (a *App) selectRow(index int) {
	a.syncFields()
	if err := a.controller.SelectRow(index); err != nil {
		a.statusBar.SetWarning("Selection Error", err.Error())
		return
	}
	a.refresh()
	if index == form.NoSelection {
		a.statusBar.ClearMessage()
		return
	}
	a.statusBar.SetMessage(fmt.Sprintf("Editing row %d", index+1))
}

// syncFields copies the form inputs into the controller.
func (a *App) syncFields() {
	for i, v := range a.form.Values() {
		a.controller.SetField(form.Field(i), v)
	}
}

// refresh pushes controller state into the components.
func (a *App) refresh() {
	fields := a.controller.Fields()
	a.form.SetValues(fields[:])
	a.table.SetBooks(a.controller.Rows())

	a.form.SetEditing("")
	if index, ok := a.controller.Selection().Index(); ok {
		a.form.SetEditing(fmt.Sprintf("row %d", index+1))
	}
}

// describeError maps a rejected action to a warning title and message.
func describeError(action form.Action, err error) (string, string) {
	switch {
	case errors.Is(err, form.ErrFieldsRequired):
		return "Input Error", "All fields are required"
	case errors.Is(err, form.ErrNoSelection):
		return "Selection Error", fmt.Sprintf("No book selected to %s", action)
	default:
		return "Error", err.Error()
	}
}
