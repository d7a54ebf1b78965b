package library

import (
	"regexp"
	"strings"
	"time"
)

// PhoneString is the phone number identifying a reader.
type PhoneString = string

var phonePattern = regexp.MustCompile(`^7\d{10}$`)

// ValidatePhone checks that phone is the digit 7 followed by exactly 10 digits.
func ValidatePhone(phone PhoneString) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}

	return nil
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(date DateString) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return t, nil
}

// Reader is a registered person who may borrow books.
type Reader struct {
	Phone            PhoneString
	FirstName        string
	LastName         string
	BirthDate        DateString
	RegistrationDate DateString
}

// NewReader is the input for registering a reader.
// The registration date is set by the store. It must be constructed with BuildNewReader.
type NewReader struct {
	Phone     PhoneString
	FirstName string
	LastName  string
	BirthDate DateString
}

// BuildNewReader validates the input and returns a NewReader.
func BuildNewReader(phone PhoneString, firstName, lastName string, birthDate DateString) (NewReader, error) {
	phone = strings.TrimSpace(phone)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	birthDate = strings.TrimSpace(birthDate)

	if phone == "" || firstName == "" || lastName == "" || birthDate == "" {
		return NewReader{}, ErrReaderFieldsMissing
	}

	if err := ValidatePhone(phone); err != nil {
		return NewReader{}, err
	}

	if _, err := ParseDate(birthDate); err != nil {
		return NewReader{}, err
	}

	return NewReader{
		Phone:     phone,
		FirstName: firstName,
		LastName:  lastName,
		BirthDate: birthDate,
	}, nil
}
