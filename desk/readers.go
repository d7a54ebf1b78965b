package desk

import (
	"strings"
	"unicode/utf8"

	v1 "github.com/AntonStoeckl/library-desk-go/service/api/v1"
)

// MaxReaderMatches is the number of suggestions MatchReaders returns at most.
const MaxReaderMatches = 3

// MatchReaders suggests readers for a partially typed borrower phone. Once input is longer than
// one character it keeps the readers whose phone contains input or whose last name contains it,
// ignoring case, in the given order and at most MaxReaderMatches of them.
func MatchReaders(readers []v1.Reader, input string) []v1.Reader {
	if utf8.RuneCountInString(input) <= 1 {
		return []v1.Reader{}
	}

	needle := strings.ToLower(input)

	matches := make([]v1.Reader, 0, MaxReaderMatches)
	for _, reader := range readers {
		if len(matches) == MaxReaderMatches {
			break
		}

		if strings.Contains(reader.Phone, input) || strings.Contains(strings.ToLower(reader.LastName), needle) {
			matches = append(matches, reader)
		}
	}

	return matches
}
