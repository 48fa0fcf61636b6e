package store

import (
	"fmt"

	"github.com/lazyvibe/shelf/internal/model"
)

// MemoryStore keeps books in a slice for the lifetime of the process.
// It is not safe for concurrent use; the UI update loop is its only caller.
type MemoryStore struct {
	books []model.Book
}

var _ BookStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{books: []model.Book{}}
}

// Append adds a book at the end.
func (s *MemoryStore) Append(b model.Book) {
	s.books = append(s.books, b)
}

// Replace overwrites the book at index.
func (s *MemoryStore) Replace(index int, b model.Book) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.books[index] = b
	return nil
}

// Remove deletes the book at index.
func (s *MemoryStore) Remove(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.books = append(s.books[:index], s.books[index+1:]...)
	return nil
}

// Get returns the book at index.
func (s *MemoryStore) Get(index int) (model.Book, error) {
	if err := s.checkIndex(index); err != nil {
		return model.Book{}, err
	}
	return s.books[index], nil
}

// List returns a copy of all books so callers cannot mutate the store.
func (s *MemoryStore) List() []model.Book {
	out := make([]model.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Len returns the number of books.
func (s *MemoryStore) Len() int {
	return len(s.books)
}

func (s *MemoryStore) checkIndex(index int) error {
	if index < 0 || index >= len(s.books) {
		return fmt.Errorf("book %d of %d: %w", index, len(s.books), ErrIndexOutOfRange)
	}
	return nil
}
