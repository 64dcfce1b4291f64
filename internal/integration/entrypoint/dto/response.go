// Package dto defines data transfer objects for API requests and responses.
package dto

// Response is the envelope wrapping every API response body.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// Fail wraps an error message in a failure envelope.
func Fail(message string) Response {
	return Response{
		Success: false,
		Error:   message,
	}
}

// FailWithCode wraps an error message and machine-readable code in a failure
// envelope.
func FailWithCode(message, code string) Response {
	return Response{
		Success: false,
		Error:   message,
		Code:    code,
	}
}
