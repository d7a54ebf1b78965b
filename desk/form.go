package desk

import (
	"fmt"
	"strings"
	"time"

	"github.com/AntonStoeckl/library-desk-go/library"
	v1 "github.com/AntonStoeckl/library-desk-go/service/api/v1"
)

const minPublicationYear = 1800

// Form validation errors. They wrap library.ErrValidation like the server's own.
var (
	ErrInvalidPublicationYear = fmt.Errorf("%w: publication year is out of range", library.ErrValidation)
	ErrInvalidPageCount       = fmt.Errorf("%w: page count must be at least 1", library.ErrValidation)
)

// ValidatePhone checks the reader phone format before it is sent.
func ValidatePhone(phone string) error {
	return library.ValidatePhone(phone)
}

// BookForm is the input of the add book action.
type BookForm struct {
	Title           string
	Author          string
	CoverType       string
	PublicationYear int
	Genre           string
	PageCount       int
	ConditionState  string
	Status          string
}

// NewBookForm returns a form with the defaults of an empty entry form: hard cover, new,
// available, published this year.
func NewBookForm() BookForm {
	return BookForm{
		CoverType:       string(library.CoverHard),
		PublicationYear: time.Now().Year(),
		ConditionState:  string(library.ConditionNew),
		Status:          string(library.StatusAvailable),
	}
}

// Validate checks title and author, a publication year between 1800 and next year, and a
// positive page count.
func (f BookForm) Validate() error {
	if strings.TrimSpace(f.Title) == "" || strings.TrimSpace(f.Author) == "" {
		return library.ErrTitleOrAuthorMissing
	}

	if f.PublicationYear < minPublicationYear || f.PublicationYear > time.Now().Year()+1 {
		return ErrInvalidPublicationYear
	}

	if f.PageCount < 1 {
		return ErrInvalidPageCount
	}

	return nil
}

// Request converts the form into the API request body.
func (f BookForm) Request() v1.AddBookRequest {
	return v1.AddBookRequest{
		Title:           f.Title,
		Author:          f.Author,
		CoverType:       f.CoverType,
		PublicationYear: f.PublicationYear,
		Genre:           f.Genre,
		PageCount:       f.PageCount,
		ConditionState:  f.ConditionState,
		Status:          f.Status,
	}
}

// ReaderForm is the input of the register reader action.
type ReaderForm struct {
	Phone     string
	FirstName string
	LastName  string
	DOB       string
}

// Validate checks that every field is filled in and the phone format.
// The date format is validated by the server.
func (f ReaderForm) Validate() error {
	for _, field := range []string{f.Phone, f.FirstName, f.LastName, f.DOB} {
		if strings.TrimSpace(field) == "" {
			return library.ErrReaderFieldsMissing
		}
	}

	return ValidatePhone(f.Phone)
}

// Request converts the form into the API request body.
func (f ReaderForm) Request() v1.RegisterReaderRequest {
	return v1.RegisterReaderRequest{
		Phone:     f.Phone,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		DOB:       f.DOB,
	}
}
