// Package form implements the book form controller: the four field values,
// the current selection, and the add/update/delete/clear actions that move
// them into a store.
package form

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lazyvibe/shelf/internal/model"
	"github.com/lazyvibe/shelf/internal/store"
)

var (
	// ErrFieldsRequired is returned when a submitted field is empty after trimming.
	ErrFieldsRequired = errors.New("all fields required")
	// ErrNoSelection is returned when update or delete runs with nothing selected.
	ErrNoSelection = errors.New("no record selected")
	// ErrUnknownAction is returned by Dispatch for an action with no handler.
	ErrUnknownAction = errors.New("unknown action")
)

// Field identifies one of the four text fields.
type Field int

const (
	FieldTitle Field = iota
	FieldAuthor
	FieldYear
	FieldISBN
)

// FieldCount is the number of editable fields.
const FieldCount = 4

// NoSelection is passed to SelectRow when the display selection is cleared.
const NoSelection = -1

// Selection is the row the form is editing, if any.
type Selection struct {
	index int
	valid bool
}

// Index returns the selected position and whether anything is selected.
func (s Selection) Index() (int, bool) {
	return s.index, s.valid
}

// Action is a user-triggered form command.
type Action int

const (
	ActionAdd Action = iota
	ActionUpdate
	ActionDelete
	ActionClear
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	case ActionClear:
		return "clear"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Controller owns the field values and selection and applies actions to a
// BookStore.
type Controller struct {
	store     store.BookStore
	fields    [FieldCount]string
	selection Selection
	handlers  map[Action]func() error
	logger    *slog.Logger
}

// NewController creates a controller over s. A nil logger discards output.
func NewController(s store.BookStore, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := &Controller{
		store:  s,
		logger: logger,
	}
	c.handlers = map[Action]func() error{
		ActionAdd:    c.SubmitAdd,
		ActionUpdate: c.SubmitUpdate,
		ActionDelete: c.SubmitDelete,
		ActionClear: func() error {
			c.ClearFields()
			return nil
		},
	}
	return c
}

// Dispatch runs the handler registered for a.
func (c *Controller) Dispatch(a Action) error {
	h, ok := c.handlers[a]
	if !ok {
		return fmt.Errorf("%s: %w", a, ErrUnknownAction)
	}
	return h()
}

// SetField stores a raw, untrimmed field value.
func (c *Controller) SetField(f Field, value string) {
	if f < 0 || int(f) >= FieldCount {
		return
	}
	c.fields[f] = value
}

// Field returns the raw value of f.
func (c *Controller) Field(f Field) string {
	if f < 0 || int(f) >= FieldCount {
		return ""
	}
	return c.fields[f]
}

// Fields returns all four raw values in column order.
func (c *Controller) Fields() [FieldCount]string {
	return c.fields
}

// Selection returns the current selection.
func (c *Controller) Selection() Selection {
	return c.selection
}

// Rows returns the display projection of the store.
func (c *Controller) Rows() []model.Book {
	return c.store.List()
}

// SubmitAdd appends the trimmed field values as a new book.
func (c *Controller) SubmitAdd() error {
	b, err := c.validated()
	if err != nil {
		return err
	}
	c.store.Append(b)
	c.logger.Debug("book added", "action", ActionAdd, "index", c.store.Len()-1, "count", c.store.Len())
	c.ClearFields()
	return nil
}

// SubmitUpdate replaces the selected book with the trimmed field values.
func (c *Controller) SubmitUpdate() error {
	index, ok := c.selection.Index()
	if !ok {
		return ErrNoSelection
	}
	b, err := c.validated()
	if err != nil {
		return err
	}
	if err := c.store.Replace(index, b); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	c.logger.Debug("book updated", "action", ActionUpdate, "index", index, "count", c.store.Len())
	c.ClearFields()
	return nil
}

// SubmitDelete removes the selected book.
func (c *Controller) SubmitDelete() error {
	index, ok := c.selection.Index()
	if !ok {
		return ErrNoSelection
	}
	if err := c.store.Remove(index); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	c.logger.Debug("book deleted", "action", ActionDelete, "index", index, "count", c.store.Len())
	c.ClearFields()
	return nil
}

// ClearFields blanks every field and drops the selection.
func (c *Controller) ClearFields() {
	c.fields = [FieldCount]string{}
	c.selection = Selection{}
}

// SelectRow selects the book at index and loads it into the fields,
// overwriting unsaved edits. NoSelection drops the selection but keeps the
// field contents as they are.
func (c *Controller) SelectRow(index int) error {
	if index == NoSelection {
		c.selection = Selection{}
		return nil
	}
	b, err := c.store.Get(index)
	if err != nil {
		return fmt.Errorf("select: %w", err)
	}
	c.selection = Selection{index: index, valid: true}
	c.fields = [FieldCount]string{b.Title, b.Author, b.Year, b.ISBN}
	return nil
}

func (c *Controller) validated() (model.Book, error) {
	b := model.NewBook(c.fields[FieldTitle], c.fields[FieldAuthor], c.fields[FieldYear], c.fields[FieldISBN])
	if !b.Complete() {
		return model.Book{}, ErrFieldsRequired
	}
	return b, nil
}
