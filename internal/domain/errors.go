package domain

import "errors"

// Error kinds surfaced to the HTTP layer. Handlers map these to status codes
// with errors.Is; anything else is an internal fault.
var (
	ErrNotFound     = errors.New("record not found")
	ErrConflict     = errors.New("conflicting record")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadInput     = errors.New("bad input")
)
