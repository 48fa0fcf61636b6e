// Package store provides the record storage abstraction for Shelf.
package store

import (
	"errors"

	"github.com/lazyvibe/shelf/internal/model"
)

// ErrIndexOutOfRange is returned when a position does not address a record.
var ErrIndexOutOfRange = errors.New("index out of range")

// BookStore defines the interface for the ordered book collection.
type BookStore interface {
	// Append adds a book at the end.
	Append(b model.Book)
	// Replace overwrites the book at index, keeping its position.
	Replace(index int, b model.Book) error
	// Remove deletes the book at index; later books shift down by one.
	Remove(index int) error
	// Get returns the book at index.
	Get(index int) (model.Book, error)
	// List returns every book in insertion order.
	List() []model.Book
	// Len returns the number of books.
	Len() int
}
