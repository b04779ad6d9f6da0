// internal/domain/apperr/apperr.go

// Package apperr defines the sentinel errors shared by the API features.
// Handlers match against these with errors.Is/As at the response boundary
// and translate them into JSON error bodies with the right status code;
// nothing below the handler layer knows about HTTP.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means no valid caller credential was presented.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the caller is authenticated but not an admin.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means the target of the operation does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyAdmin means the target user already holds the admin role.
	ErrAlreadyAdmin = errors.New("user is already an admin")

	// ErrSelfRemoval means a caller tried to revoke their own admin role.
	ErrSelfRemoval = errors.New("cannot remove your own admin access")

	// ErrMailerNotConfigured means outbound email is required but the
	// mailer has no usable SMTP configuration.
	ErrMailerNotConfigured = errors.New("email delivery is not configured")
)

// ValidationError reports a missing or malformed input field. The message
// is shown to the caller verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation builds a ValidationError with the given caller-facing message.
func Validation(msg string) error { return &ValidationError{Msg: msg} }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ProviderError wraps a failure from a downstream service (the database or
// the mail transport), preserving the diagnostic for the error response.
type ProviderError struct {
	Op  string // e.g. "send contact email"
	Err error
}

func (e *ProviderError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *ProviderError) Unwrap() error { return e.Err }

// Provider wraps err as a ProviderError for operation op.
func Provider(op string, err error) error { return &ProviderError{Op: op, Err: err} }
