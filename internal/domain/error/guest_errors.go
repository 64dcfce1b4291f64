package error

import "errors"

// Guest domain errors.
var (
	// ErrGuestNotFound is returned when a guest is not found.
	ErrGuestNotFound = errors.New("guest not found")

	// ErrGuestNameRequired is returned when the guest name is empty.
	ErrGuestNameRequired = errors.New("guest name is required")

	// ErrNotGuestOwner is returned when a user acts on another user's guest.
	ErrNotGuestOwner = errors.New("guest does not belong to this user")
)

// GuestErrorCode defines error codes for guest errors.
// Format: GST-XXYYYY where XX is category and YYYY is specific error.
type GuestErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeGuestNotFound GuestErrorCode = "GST-010001"

	// Validation errors (02XXXX)
	ErrCodeGuestNameRequired  GuestErrorCode = "GST-020001"
	ErrCodeMissingGuestFields GuestErrorCode = "GST-020002"

	// Authorization errors (03XXXX)
	ErrCodeNotGuestOwner GuestErrorCode = "GST-030001"
)

// GuestError represents a guest error with code and message.
type GuestError struct {
	Code    GuestErrorCode
	Message string
	Err     error
}

func (e *GuestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *GuestError) Unwrap() error {
	return e.Err
}

// NewGuestError creates a new GuestError with the given code and message.
func NewGuestError(code GuestErrorCode, message string, err error) *GuestError {
	return &GuestError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
