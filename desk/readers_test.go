package desk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-desk-go/desk"
	v1 "github.com/AntonStoeckl/library-desk-go/service/api/v1"
)

func Test_MatchReaders(t *testing.T) {
	readers := []v1.Reader{
		{Phone: "79001234567", LastName: "Lovelace"},
		{Phone: "79007654321", LastName: "Turing"},
		{Phone: "79161112233", LastName: "Hopper"},
		{Phone: "79005550000", LastName: "Lamport"},
		{Phone: "79009990000", LastName: "Liskov"},
	}

	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty input", input: "", want: []string{}},
		{name: "single character", input: "7", want: []string{}},
		{name: "single letter", input: "L", want: []string{}},
		{name: "phone fragment", input: "916", want: []string{"79161112233"}},
		{name: "last name ignoring case", input: "TUR", want: []string{"79007654321"}},
		{name: "phone or last name", input: "ho", want: []string{"79161112233"}},
		{name: "limit applies", input: "7900", want: []string{"79001234567", "79007654321", "79005550000"}},
		{name: "last names limited", input: "la", want: []string{"79001234567", "79005550000"}},
		{name: "no match", input: "xyz", want: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			matches := desk.MatchReaders(readers, tc.input)

			// assert
			phones := make([]string, 0, len(matches))
			for _, reader := range matches {
				phones = append(phones, reader.Phone)
			}
			assert.Equal(t, tc.want, phones)
		})
	}
}
