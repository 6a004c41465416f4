package errors

import "errors"

// Codes shared by the engine services and the transports.
const (
	CodeInvalidDate  = "invalid_date"
	CodeInvalidInput = "invalid_input"
	CodeCache        = "cache_error"
)

// AppError encodes domain specific error details.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap produces a new AppError instance.
func Wrap(code, message string, err error) error {
	if err == nil {
		return &AppError{Code: code, Message: message}
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// IsCode helps handler differentiate failures.
func IsCode(err error, code string) bool {
	return Code(err) == code && code != ""
}

// Code extracts the outermost AppError code, or "" when err carries none.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsClientError reports failures caused by caller input.
func IsClientError(err error) bool {
	switch Code(err) {
	case CodeInvalidDate, CodeInvalidInput:
		return true
	default:
		return false
	}
}
