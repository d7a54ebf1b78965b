package removebook

import (
	"github.com/AntonStoeckl/library-desk-go/library"
)

const (
	commandType = "RemoveBook"
)

// Command represents the intent to delete a book from the catalog.
type Command struct {
	BookID library.BookID
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command.
func BuildCommand(bookID library.BookID) (Command, error) {
	if bookID <= 0 {
		return Command{}, library.ErrBookIDMissing
	}

	return Command{BookID: bookID}, nil
}
