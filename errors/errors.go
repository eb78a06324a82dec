package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Error is the single error value reported for a failed call.
type Error struct {
	// Code classifies the failure.
	Code ErrorCode `json:"code"`
	// Message is a human-readable description.
	Message string `json:"message"`
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int `json:"status_code,omitempty"`
	// RetryAfter is the server's Retry-After hint on HTTP 429, if any.
	RetryAfter time.Duration `json:"retry_after,omitempty"`
	// Details carries optional context such as validation field errors.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error, if any.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("slack: %s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("slack: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error carrying the same code, so that
// errors.Is(err, errors.New(errors.ErrCodeInvalidAuth)) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Retryable reports whether the call may sensibly be repeated by the caller.
func (e *Error) Retryable() bool { return IsRetryableCode(e.Code) }

// WithCause sets the underlying cause and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates an Error for code with the code itself as message.
func New(code ErrorCode) *Error {
	return &Error{Code: code, Message: string(code)}
}

// --- Constructors for the client-side kinds ---

// ClientNetwork reports a failure to build, send or complete a request.
func ClientNetwork(cause error) *Error {
	msg := "request could not be completed"
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{Code: ErrCodeClientNetwork, Message: msg, Cause: cause}
}

// UnexpectedStatus reports an HTTP status the classifier does not accept.
func UnexpectedStatus(status int) *Error {
	return &Error{
		Code:       ErrCodeClientNetwork,
		Message:    fmt.Sprintf("unexpected HTTP status %d", status),
		StatusCode: status,
	}
}

// ClientJSON reports a response body that is not a JSON object.
func ClientJSON(status int, cause error) *Error {
	return &Error{
		Code:       ErrCodeClientJSON,
		Message:    "response body is not a JSON object",
		StatusCode: status,
		Cause:      cause,
	}
}

// TooManyRequests reports HTTP 429.
func TooManyRequests(retryAfter time.Duration) *Error {
	return &Error{
		Code:       ErrCodeTooManyRequests,
		Message:    "rate limited by server",
		StatusCode: 429,
		RetryAfter: retryAfter,
	}
}

// Server reports an envelope with ok=false. raw is the "error" string as
// sent; it is looked up against the code table.
func Server(raw string) *Error {
	code := Lookup(raw)
	msg := raw
	if msg == "" {
		msg = "server reported failure without an error code"
	}
	return &Error{Code: code, Message: msg, StatusCode: 200}
}

// MissingField reports a successful envelope that lacks a field the caller
// needs.
func MissingField(key string) *Error {
	return &Error{
		Code:       ErrCodeClientJSON,
		Message:    fmt.Sprintf("response has no %q field", key),
		StatusCode: 200,
	}
}

// InvalidConfig reports a configuration that failed validation.
func InvalidConfig(msg string) *Error {
	return &Error{Code: ErrCodeInvalidConfig, Message: msg}
}

// --- Inspection helpers ---

// AsError converts err to an *Error if possible.
func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code carried by err. A nil error yields "", any error
// that is not an *Error yields ErrCodeUnknown.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return ErrCodeUnknown
}

// HasCode reports whether err carries code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// IsRetryable reports whether err is an *Error with a retryable code.
func IsRetryable(err error) bool {
	e, ok := AsError(err)
	return ok && e.Retryable()
}
