package service

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	ErrUnauthorized       = errors.New("invalid or expired admin session")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("question not found")
)

// ValidationError reports a rejected request payload (HTTP 400). Nothing is
// written to the store when one of these comes back.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(message string) error {
	return &ValidationError{Message: message}
}
