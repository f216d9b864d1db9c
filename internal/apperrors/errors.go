package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
// Cross-tenant lookups also surface as ErrNotFound so that existence is not leaked.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNotAuthenticated indicates that no caller identity could be resolved for the request.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrProfileNotFound indicates the caller has no profile and therefore no tenant scope.
var ErrProfileNotFound = errors.New("profile not found for caller")

// ErrConflict indicates the operation conflicts with the current state of the
// resource, e.g. a disallowed lifecycle transition or a stale-version update.
var ErrConflict = errors.New("conflict with current resource state")

// ErrStoreUnavailable indicates the persistence layer did not answer in time.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside the underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
