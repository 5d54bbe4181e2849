package urlcheck

import "fmt"

// ErrorCode classifies why an input was rejected. The set is closed: every
// rejection maps to exactly one of these values and callers branch on them
// to build user-facing messages.
type ErrorCode string

const (
	CodeInvalidType        ErrorCode = "INVALID_TYPE"
	CodeEmptyURL           ErrorCode = "EMPTY_URL"
	CodeMalformedURL       ErrorCode = "MALFORMED_URL"
	CodeProtocolNotAllowed ErrorCode = "PROTOCOL_NOT_ALLOWED"
	CodeInvalidHostname    ErrorCode = "INVALID_HOSTNAME"
)

// ValidationError is a terminal, non-retryable rejection of one input.
type ValidationError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	cause   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying parse error for MALFORMED_URL rejections.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

func newError(code ErrorCode, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrapError(code ErrorCode, cause error, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...), cause: cause}
}
