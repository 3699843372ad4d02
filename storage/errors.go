package storage

import "errors"

// Failure taxonomy shared by every service operation. Callers classify with
// errors.Is; the HTTP layer maps each kind to a status code.
var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("invalid input")
)
