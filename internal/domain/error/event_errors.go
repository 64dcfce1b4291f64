package error

import "errors"

// Event setting domain errors.
var (
	// ErrEventSettingNotFound is returned when an event setting is not found.
	ErrEventSettingNotFound = errors.New("event settings not found for this user")

	// ErrEventNotConfigured is returned when invitation generation is
	// requested for a user without an event setting.
	ErrEventNotConfigured = errors.New("event is not configured, no invitations can be generated")

	// ErrEventUserMismatch is returned when an event setting is updated for
	// the wrong user.
	ErrEventUserMismatch = errors.New("mismatched user for this setting")
)

// EventErrorCode defines error codes for event setting errors.
// Format: EVT-XXYYYY where XX is category and YYYY is specific error.
type EventErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeEventSettingNotFound EventErrorCode = "EVT-010001"
	ErrCodeEventNotConfigured   EventErrorCode = "EVT-010002"

	// Validation errors (02XXXX)
	ErrCodeMissingEventFields EventErrorCode = "EVT-020001"

	// Authorization errors (03XXXX)
	ErrCodeEventUserMismatch EventErrorCode = "EVT-030001"
)

// EventError represents an event setting error with code and message.
type EventError struct {
	Code    EventErrorCode
	Message string
	Err     error
}

func (e *EventError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *EventError) Unwrap() error {
	return e.Err
}

// NewEventError creates a new EventError with the given code and message.
func NewEventError(code EventErrorCode, message string, err error) *EventError {
	return &EventError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
