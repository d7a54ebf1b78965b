package lendbooktoreader

import (
	"strings"

	"github.com/AntonStoeckl/library-desk-go/library"
)

const (
	commandType = "LendBookToReader"
)

// Command represents the intent to lend a book to a reader.
type Command struct {
	BookID library.BookID
	Phone  library.PhoneString
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand validates the input and creates a new Command.
func BuildCommand(bookID library.BookID, phone library.PhoneString) (Command, error) {
	phone = strings.TrimSpace(phone)

	if bookID <= 0 || phone == "" {
		return Command{}, library.ErrLendFieldsMissing
	}

	if err := library.ValidatePhone(phone); err != nil {
		return Command{}, err
	}

	return Command{BookID: bookID, Phone: phone}, nil
}
