package desk_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-desk-go/desk"
	"github.com/AntonStoeckl/library-desk-go/library"
)

func Test_BookForm_Validate(t *testing.T) {
	valid := func() desk.BookForm {
		form := desk.NewBookForm()
		form.Title, form.Author, form.PageCount = "Dune", "Frank Herbert", 412
		return form
	}

	testCases := []struct {
		name   string
		modify func(*desk.BookForm)
		want   error
	}{
		{name: "valid", modify: func(*desk.BookForm) {}},
		{name: "missing title", modify: func(f *desk.BookForm) { f.Title = " " }, want: library.ErrTitleOrAuthorMissing},
		{name: "year too early", modify: func(f *desk.BookForm) { f.PublicationYear = 1799 }, want: desk.ErrInvalidPublicationYear},
		{name: "year next year", modify: func(f *desk.BookForm) { f.PublicationYear = time.Now().Year() + 1 }},
		{name: "year in two years", modify: func(f *desk.BookForm) { f.PublicationYear = time.Now().Year() + 2 }, want: desk.ErrInvalidPublicationYear},
		{name: "no pages", modify: func(f *desk.BookForm) { f.PageCount = 0 }, want: desk.ErrInvalidPageCount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			form := valid()
			tc.modify(&form)

			err := form.Validate()

			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, library.ErrValidation)
		})
	}
}

func Test_ReaderForm_Validate(t *testing.T) {
	valid := func() desk.ReaderForm {
		return desk.ReaderForm{Phone: "79001234567", FirstName: "Ada", LastName: "Lovelace", DOB: "1990-12-10"}
	}

	testCases := []struct {
		name   string
		modify func(*desk.ReaderForm)
		want   error
	}{
		{name: "valid", modify: func(*desk.ReaderForm) {}},
		{name: "blank phone", modify: func(f *desk.ReaderForm) { f.Phone = "" }, want: library.ErrReaderFieldsMissing},
		{name: "blank first name", modify: func(f *desk.ReaderForm) { f.FirstName = " " }, want: library.ErrReaderFieldsMissing},
		{name: "blank last name", modify: func(f *desk.ReaderForm) { f.LastName = "" }, want: library.ErrReaderFieldsMissing},
		{name: "blank date of birth", modify: func(f *desk.ReaderForm) { f.DOB = "" }, want: library.ErrReaderFieldsMissing},
		{name: "phone starting with 8", modify: func(f *desk.ReaderForm) { f.Phone = "89001234567" }, want: library.ErrInvalidPhone},
		{name: "phone too short", modify: func(f *desk.ReaderForm) { f.Phone = "7900123456" }, want: library.ErrInvalidPhone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			form := valid()
			tc.modify(&form)

			err := form.Validate()

			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, library.ErrValidation)
		})
	}
}
