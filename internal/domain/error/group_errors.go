package error

import "errors"

// Guest group domain errors.
var (
	// ErrGroupNotFound is returned when a guest group is not found.
	ErrGroupNotFound = errors.New("group not found")

	// ErrGroupNameRequired is returned when the group name is empty.
	ErrGroupNameRequired = errors.New("group name is required")

	// ErrNotGroupOwner is returned when a user acts on another user's group.
	ErrNotGroupOwner = errors.New("group does not belong to this user")
)

// GroupErrorCode defines error codes for guest group errors.
// Format: GRP-XXYYYY where XX is category and YYYY is specific error.
type GroupErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeGroupNotFound GroupErrorCode = "GRP-010001"

	// Validation errors (02XXXX)
	ErrCodeGroupNameRequired  GroupErrorCode = "GRP-020001"
	ErrCodeMissingGroupFields GroupErrorCode = "GRP-020002"

	// Authorization errors (03XXXX)
	ErrCodeNotGroupOwner GroupErrorCode = "GRP-030001"
)

// GroupError represents a guest group error with code and message.
type GroupError struct {
	Code    GroupErrorCode
	Message string
	Err     error
}

func (e *GroupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *GroupError) Unwrap() error {
	return e.Err
}

// NewGroupError creates a new GroupError with the given code and message.
func NewGroupError(code GroupErrorCode, message string, err error) *GroupError {
	return &GroupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
