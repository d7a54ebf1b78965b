package registerreader

import (
	"github.com/AntonStoeckl/library-desk-go/library"
)

const (
	commandType = "RegisterReader"
)

// Command represents the intent to register a reader.
type Command struct {
	Reader library.NewReader
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand validates the input and creates a new Command.
func BuildCommand(
	phone library.PhoneString,
	firstName string,
	lastName string,
	birthDate library.DateString,
) (Command, error) {
	reader, err := library.BuildNewReader(phone, firstName, lastName, birthDate)
	if err != nil {
		return Command{}, err
	}

	return Command{Reader: reader}, nil
}
