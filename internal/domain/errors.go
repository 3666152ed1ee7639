package domain

import "errors"

// Sentinel errors for the API error taxonomy. Services wrap these with
// fmt.Errorf("...: %w", Err...) and the HTTP error handler maps them to
// status codes, so no layer below the handlers knows about HTTP.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)
