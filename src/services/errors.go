package services

import "errors"

// Sentinel errors the controllers translate into HTTP status codes. Anything
// else coming out of a service is treated as a storage failure (500) and the
// underlying detail is logged, not returned to the caller.
var (
	ErrMissingFields   = errors.New("required fields are missing")
	ErrDuplicateISBN   = errors.New("a book with this ISBN already exists")
	ErrBookNotFound    = errors.New("book does not exist")
	ErrMemberNotFound  = errors.New("member does not exist")
	ErrBookUnavailable = errors.New("book is not available for issue (already on loan)")
	ErrBookOnLoan      = errors.New("book has an open issue and cannot be deleted")
	ErrMemberHasLoans  = errors.New("member has open issues and cannot be deleted")
)
