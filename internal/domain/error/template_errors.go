package error

import "errors"

// Message template domain errors.
var (
	// ErrTemplateNotFound is returned when a message template is not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateNameRequired is returned when the template name is empty.
	ErrTemplateNameRequired = errors.New("template name is required")

	// ErrNotTemplateOwner is returned when a user edits or deletes a template
	// they do not own, or a user-scope operation targets a global template.
	ErrNotTemplateOwner = errors.New("template does not belong to this user")

	// ErrTemplateNotGlobal is returned when an admin operation targets a
	// user-scope template.
	ErrTemplateNotGlobal = errors.New("template is not a global template")

	// ErrSuggestionUnavailable is returned when the AI suggestion service is
	// not configured.
	ErrSuggestionUnavailable = errors.New("template suggestion service is not available")
)

// TemplateErrorCode defines error codes for template errors.
// Format: TPL-XXYYYY where XX is category and YYYY is specific error.
type TemplateErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeTemplateNotFound TemplateErrorCode = "TPL-010001"

	// Validation errors (02XXXX)
	ErrCodeTemplateNameRequired  TemplateErrorCode = "TPL-020001"
	ErrCodeMissingTemplateFields TemplateErrorCode = "TPL-020002"

	// Authorization errors (03XXXX)
	ErrCodeNotTemplateOwner  TemplateErrorCode = "TPL-030001"
	ErrCodeTemplateNotGlobal TemplateErrorCode = "TPL-030002"

	// Suggestion errors (04XXXX)
	ErrCodeSuggestionUnavailable TemplateErrorCode = "TPL-040001"
	ErrCodeSuggestionFailed      TemplateErrorCode = "TPL-040002"
)

// TemplateError represents a message template error with code and message.
type TemplateError struct {
	Code    TemplateErrorCode
	Message string
	Err     error
}

func (e *TemplateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// NewTemplateError creates a new TemplateError with the given code and message.
func NewTemplateError(code TemplateErrorCode, message string, err error) *TemplateError {
	return &TemplateError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
