// Package ui provides the terminal user interface for Shelf.
package ui

import "github.com/lazyvibe/shelf/internal/form"

// ActionMsg asks the app to run a form action, e.g. from Program.Send.
// Key bindings run their action directly inside Update.
type ActionMsg struct {
	Action form.Action
}

// SelectRowMsg reports a row selection change from outside the table. Index
// is form.NoSelection when the selection was cleared.
type SelectRowMsg struct {
	Index int
}
