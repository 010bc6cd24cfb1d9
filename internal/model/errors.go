package model

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a record does not resolve to a live user.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when another live record already holds the
	// case-folded email.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccessDenied is returned when the authenticated caller is not the
	// owner of the requested record.
	ErrAccessDenied = errors.New("access denied - you can only access your own data")
	// ErrMalformedID is returned for path identifiers that are not valid UUIDs.
	ErrMalformedID = errors.New("invalid ID format, expected a valid UUID")
)

// ValidationError carries every violated field rule, not just the first.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}
