// Shelf - a terminal form for keeping a list of books.
package main

import "github.com/lazyvibe/shelf/internal/cli"

func main() {
	cli.Execute()
}
