package error

import "errors"

// Send tracking domain errors.
var (
	// ErrInvalidChannel is returned when the send channel is not one of
	// whatsapp, copy or link.
	ErrInvalidChannel = errors.New("invalid send channel")
)

// SendErrorCode defines error codes for send tracking errors.
// Format: SND-XXYYYY where XX is category and YYYY is specific error.
type SendErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidChannel    SendErrorCode = "SND-010001"
	ErrCodeMissingSendFields SendErrorCode = "SND-010002"
)

// SendError represents a send tracking error with code and message.
type SendError struct {
	Code    SendErrorCode
	Message string
	Err     error
}

func (e *SendError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// NewSendError creates a new SendError with the given code and message.
func NewSendError(code SendErrorCode, message string, err error) *SendError {
	return &SendError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
