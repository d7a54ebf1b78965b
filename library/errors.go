package library

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this module wraps exactly one of them.
var (
	// ErrValidation signals missing or malformed input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound signals that a referenced book or reader does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals that the current state does not allow the operation.
	ErrConflict = errors.New("conflict")

	// ErrStore signals an underlying persistence failure.
	ErrStore = errors.New("store failure")
)

// Validation errors.
var (
	ErrTitleOrAuthorMissing = fmt.Errorf("%w: title and author are required", ErrValidation)
	ErrInvalidBookStatus    = fmt.Errorf("%w: status must be AVAILABLE or BORROWED", ErrValidation)
	ErrNewBookBorrowed      = fmt.Errorf("%w: a new book cannot be added as BORROWED", ErrValidation)
	ErrReaderFieldsMissing  = fmt.Errorf("%w: phone, first name, last name and date of birth are required", ErrValidation)
	ErrInvalidPhone         = fmt.Errorf("%w: phone must be 7 followed by 10 digits", ErrValidation)
	ErrInvalidDate          = fmt.Errorf("%w: date must have the format YYYY-MM-DD", ErrValidation)
	ErrLendFieldsMissing    = fmt.Errorf("%w: book id and phone are required", ErrValidation)
	ErrBookIDMissing        = fmt.Errorf("%w: book id is required", ErrValidation)
)

// Not found errors.
var (
	ErrBookNotFound   = fmt.Errorf("%w: book does not exist", ErrNotFound)
	ErrReaderNotFound = fmt.Errorf("%w: reader is not registered, register the reader first", ErrNotFound)
)

// Conflict errors.
var (
	ErrBookNotAvailable         = fmt.Errorf("%w: book is not available, it is already borrowed", ErrConflict)
	ErrReaderAlreadyRegistered  = fmt.Errorf("%w: a reader with this phone is already registered", ErrConflict)
	ErrLendingInvariantViolated = fmt.Errorf("%w: status, borrower phone and borrowed date disagree", ErrConflict)
)

// Store errors.
var (
	ErrNilDatabaseConnection     = fmt.Errorf("%w: database connection is nil", ErrStore)
	ErrEmptyTableName            = fmt.Errorf("%w: empty table name supplied", ErrStore)
	ErrBuildingQueryFailed       = fmt.Errorf("%w: building query failed", ErrStore)
	ErrQueryingFailed            = fmt.Errorf("%w: querying database failed", ErrStore)
	ErrExecutingFailed           = fmt.Errorf("%w: executing statement failed", ErrStore)
	ErrScanningDBRowFailed       = fmt.Errorf("%w: scanning database row failed", ErrStore)
	ErrGettingRowsAffectedFailed = fmt.Errorf("%w: getting rows affected failed", ErrStore)
)
