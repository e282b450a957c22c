package services

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by the orchestration services. Callers discriminate
// with errors.Is / errors.As; the wrapped cause is preserved.
var (
	ErrProfileCreation = errors.New("profile creation failed")
	ErrWalletService   = errors.New("wallet service failure")
	ErrPersistence     = errors.New("persistence failure")
	ErrForbidden       = errors.New("operation not permitted")
)

// ValidationError names the first missing or invalid required form field.
// Raised before any database or network call is made.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// NotFoundError reports a read for a row that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}
