package addbook

import (
	"github.com/AntonStoeckl/library-desk-go/library"
)

const (
	commandType = "AddBook"
)

// Command represents the intent to add a book to the catalog.
type Command struct {
	Book library.NewBook
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand validates the input and creates a new Command.
func BuildCommand(
	title string,
	author string,
	coverType library.CoverType,
	publicationYear int,
	genre string,
	pageCount int,
	conditionState library.ConditionState,
	status library.BookStatus,
) (Command, error) {
	book, err := library.BuildNewBook(title, author, coverType, publicationYear, genre, pageCount, conditionState, status)
	if err != nil {
		return Command{}, err
	}

	return Command{Book: book}, nil
}
