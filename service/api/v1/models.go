// Package v1 holds the JSON models of the library desk REST API, shared by the server and the desk client.
package v1

// Book is a catalog entry as returned by GET /books.
// Borrower fields are null unless the book is BORROWED.
type Book struct {
	ID                int64   `json:"id"                readOnly:"true"`
	Title             string  `json:"title"             example:"War and Peace"`
	Author            string  `json:"author"            example:"Leo Tolstoy"`
	CoverType         string  `json:"coverType"         example:"HARD"`
	PublicationYear   int     `json:"publicationYear"   example:"1869"`
	Genre             string  `json:"genre"             example:"Novel"`
	PageCount         int     `json:"pageCount"         example:"1225"`
	ConditionState    string  `json:"conditionState"    example:"USED"`
	Status            string  `json:"status"            example:"AVAILABLE"   enum:"AVAILABLE,BORROWED"`
	BorrowedDate      *string `json:"borrowedDate"      example:"2024-03-15"  format:"date"`
	BorrowerPhone     *string `json:"borrowerPhone"     example:"79001234567"`
	BorrowerFirstName *string `json:"borrowerFirstName" example:"Ada"`
	BorrowerLastName  *string `json:"borrowerLastName"  example:"Lovelace"`
}

// Reader is a registered reader as returned by GET /readers.
type Reader struct {
	Phone            string `json:"phone"            example:"79001234567"`
	FirstName        string `json:"firstName"        example:"Ada"`
	LastName         string `json:"lastName"         example:"Lovelace"`
	BirthDate        string `json:"birthDate"        example:"1990-12-10" format:"date"`
	RegistrationDate string `json:"registrationDate" example:"2024-03-15" format:"date"`
}

// AddBookRequest is the body of POST /books. Every field is optional on the wire so that
// missing values are reported by the domain validation with a 400.
type AddBookRequest struct {
	Title           string `json:"title,omitempty"           example:"War and Peace"`
	Author          string `json:"author,omitempty"          example:"Leo Tolstoy"`
	CoverType       string `json:"coverType,omitempty"       example:"HARD"`
	PublicationYear int    `json:"publicationYear,omitempty" example:"1869"`
	Genre           string `json:"genre,omitempty"           example:"Novel"`
	PageCount       int    `json:"pageCount,omitempty"       example:"1225"`
	ConditionState  string `json:"conditionState,omitempty"  example:"NEW"`
	Status          string `json:"status,omitempty"          example:"AVAILABLE" doc:"defaults to AVAILABLE"`
}

// RegisterReaderRequest is the body of POST /readers.
type RegisterReaderRequest struct {
	Phone     string `json:"phone,omitempty"     example:"79001234567" doc:"7 followed by 10 digits"`
	FirstName string `json:"firstName,omitempty" example:"Ada"`
	LastName  string `json:"lastName,omitempty"  example:"Lovelace"`
	DOB       string `json:"dob,omitempty"       example:"1990-12-10"  doc:"date of birth, YYYY-MM-DD"`
}

// BorrowRequest is the body of POST /borrow.
type BorrowRequest struct {
	BookID int64  `json:"bookId,omitempty" example:"1"`
	Phone  string `json:"phone,omitempty"  example:"79001234567"`
}

// ReturnRequest is the body of POST /return.
type ReturnRequest struct {
	BookID int64 `json:"bookId,omitempty" example:"1"`
}

// MessageResponse is the body of successful mutations without a new identifier.
type MessageResponse struct {
	Message string `json:"message" example:"book returned"`
}

// BookCreatedResponse is the body of a successful POST /books.
type BookCreatedResponse struct {
	Message string `json:"message" example:"book added"`
	ID      int64  `json:"id"      example:"1"`
}

// ReaderRegisteredResponse is the body of a successful POST /readers. The id is the phone.
type ReaderRegisteredResponse struct {
	Message string `json:"message" example:"reader registered"`
	ID      string `json:"id"      example:"79001234567"`
}
