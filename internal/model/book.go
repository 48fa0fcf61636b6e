// Package model defines core data structures for Shelf.
package model

import "strings"

// Columns are the display headings, in the order Values returns them.
var Columns = []string{"Title", "Author", "Year", "ISBN"}

// Book is a single catalogue record. It has no identity beyond its
// position in the store, so two books may be identical.
type Book struct {
	// Title of the book.
	Title string `json:"title"`
	// Author as entered; no name parsing is done.
	Author string `json:"author"`
	// Year is free text and is never parsed as a number.
	Year string `json:"year"`
	// ISBN is free text with no checksum or format validation.
	ISBN string `json:"isbn"`
}

// NewBook builds a book from raw field values, trimming surrounding whitespace.
func NewBook(title, author, year, isbn string) Book {
	return Book{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		Year:   strings.TrimSpace(year),
		ISBN:   strings.TrimSpace(isbn),
	}
}

// Values returns the record's fields in Columns order.
func (b Book) Values() []string {
	return []string{b.Title, b.Author, b.Year, b.ISBN}
}

// Complete reports whether every field is non-empty.
func (b Book) Complete() bool {
	return b.Title != "" && b.Author != "" && b.Year != "" && b.ISBN != ""
}
