// Package error defines domain-specific errors for the Inviteable application.
package error

import "errors"

// User management domain errors.
var (
	// ErrUserNotFound is returned when a profile is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when creating a user with an existing email.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrInvalidEmail is returned when the provided email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidRole is returned when the provided role is not admin or user.
	ErrInvalidRole = errors.New("invalid role")
)

// UserErrorCode defines error codes for user management errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeUserNotFound UserErrorCode = "USR-010001"

	// Validation errors (02XXXX)
	ErrCodeInvalidEmail      UserErrorCode = "USR-020001"
	ErrCodeInvalidRole       UserErrorCode = "USR-020002"
	ErrCodeMissingUserFields UserErrorCode = "USR-020003"

	// Conflict errors (03XXXX)
	ErrCodeEmailExists UserErrorCode = "USR-030001"
)

// UserError represents a user management error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
