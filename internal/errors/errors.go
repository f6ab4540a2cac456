// Package errors provides the error definitions and classification helpers
// used across pokebox. It defines the domain error for catalog traffic,
// the semantic errors for user input, and helpers for deciding how an error
// should be reported.
//
// # Error Types
//
// Domain-specific errors:
//   - NetworkError: any failure talking to the catalog API, including
//     transport failures, non-2xx statuses and malformed bodies
//
// Semantic errors:
//   - ValidationError: invalid input or state
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewNetworkError("list", ErrUnexpectedStatus).
//	    WithURL(u).WithStatusCode(resp.StatusCode)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrMalformedResponse) { ... }
//
//	var netErr *errors.NetworkError
//	if errors.As(err, &netErr) { ... }
//
//	if errors.IsRetryable(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Catalog traffic sentinel errors
var (
	// ErrRequestFailed indicates the HTTP round trip itself failed.
	ErrRequestFailed = New("request failed")
	// ErrUnexpectedStatus indicates the catalog answered with a non-2xx status.
	ErrUnexpectedStatus = New("unexpected status")
	// ErrMalformedResponse indicates the body could not be decoded into the expected shape.
	ErrMalformedResponse = New("malformed response")
)

// General sentinel errors
var (
	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = New("operation canceled")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// BoxError is the base interface for pokebox errors.
type BoxError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the error is transient and the operation
	// may succeed on retry.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

var _ BoxError = (*NetworkError)(nil)

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// NetworkError is the single failure kind for catalog traffic. Op names the
// operation ("list" or "entry").
//
// Example:
//
//	err := errors.NewNetworkError("entry", errors.ErrUnexpectedStatus).
//	    WithURL("https://pokeapi.co/api/v2/pokemon/25/").WithStatusCode(503)
//	fmt.Println(err) // "network error [op=entry, status=503, url=...]: unexpected status"
type NetworkError struct {
	baseError
	Op         string
	URL        string
	StatusCode int
}

// NewNetworkError creates a new NetworkError for the given operation.
func NewNetworkError(op string, cause error) *NetworkError {
	return &NetworkError{
		baseError: baseError{
			message:    op + " failed",
			cause:      cause,
			severity:   SeverityError,
			retryable:  retryableCause(cause),
			userFacing: true,
		},
		Op: op,
	}
}

// retryableCause reports whether a cause is plausibly transient. Nothing in
// pokebox retries; the flag only informs the status line.
func retryableCause(cause error) bool {
	return Is(cause, ErrRequestFailed)
}

// WithURL adds the request URL to the error context.
func (e *NetworkError) WithURL(u string) *NetworkError {
	e.URL = u
	return e
}

// WithStatusCode records the HTTP status. 5xx and 429 are marked retryable.
func (e *NetworkError) WithStatusCode(code int) *NetworkError {
	e.StatusCode = code
	if code >= 500 || code == 429 {
		e.retryable = true
	}
	return e
}

// WithSeverity sets the error severity.
func (e *NetworkError) WithSeverity(s Severity) *NetworkError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *NetworkError) Error() string {
	var parts []string
	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}
	if e.StatusCode != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	if e.URL != "" {
		parts = append(parts, fmt.Sprintf("url=%s", e.URL))
	}

	prefix := "network error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("network error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %v", prefix, e.cause)
	}
	return prefix
}

// Is reports whether target is a *NetworkError or matches the cause chain.
func (e *NetworkError) Is(target error) bool {
	if _, ok := target.(*NetworkError); ok {
		return true
	}
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// ValidationError represents invalid input, such as a box number out of range.
type ValidationError struct {
	Field   string
	Value   any
	Message string
	cause   error
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// WithField sets the field that failed validation.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue records the rejected value.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause sets the underlying cause.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation error")
	if e.Field != "" {
		sb.WriteString(fmt.Sprintf(" [%s]", e.Field))
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Value != nil {
		sb.WriteString(fmt.Sprintf(" (got: %v)", e.Value))
	}
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

// Is reports whether target is a *ValidationError or ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error is transient.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var boxErr BoxError
	if As(err, &boxErr) {
		return boxErr.IsRetryable()
	}

	return Is(err, ErrRequestFailed)
}

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var boxErr BoxError
	if As(err, &boxErr) {
		return boxErr.IsUserFacing()
	}

	var validation *ValidationError
	return As(err, &validation)
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement BoxError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var boxErr BoxError
	if As(err, &boxErr) {
		return boxErr.Severity()
	}

	return SeverityError
}

// IsNetworkError reports whether err is or wraps a *NetworkError.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return As(err, &netErr)
}

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
