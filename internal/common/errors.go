// Package common defines shared sentinel errors and small helpers used across
// credkeeper layers. Callers should use errors.Is to match the error values.
package common

import "errors"

var (
	// Validation errors. The message text is shown to the user verbatim.
	ErrInvalidEmail       = errors.New("please enter a valid email address")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrMalformed reports a stored value that cannot be decoded.
	// It never leaves the repository layer.
	ErrMalformed = errors.New("malformed stored value")
)

// IsValidation reports whether err belongs to the user-facing validation
// taxonomy, as opposed to a storage failure.
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrWeakPassword),
		errors.Is(err, ErrPasswordMismatch),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrInvalidCredentials):
		return true
	}
	return false
}
