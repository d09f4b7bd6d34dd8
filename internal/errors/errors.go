// Package errors provides the error kinds studyplan distinguishes when
// talking to the planning service, plus classification helpers.
//
// # Error Kinds
//
// Every failure the client can hit falls into one of three kinds, and each
// kind decides how the failure reaches the chat log:
//
//   - ValidationError: local input was rejected before any request was made
//   - APIError: the server answered with a non-2xx status and an error string
//   - TransportError: no usable answer arrived (network failure, bad body)
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewValidationError("enter a 10-digit number").WithField("whatsapp")
//	err := errors.NewAPIError("/api/upload", http.StatusBadRequest, "Invalid file")
//	err := errors.NewTransportError("/api/chat", cause)
//
// Checking errors:
//
//	var apiErr *errors.APIError
//	if errors.As(err, &apiErr) { ... }
//
//	if errors.Is(err, errors.ErrNoResponse) { ... }
//	if errors.IsRetryable(err) { ... }
//
// # Error Classification
//
// Errors can be classified by severity and behavior:
//   - Retryable: transient errors that may succeed on retry
//   - UserFacing: errors whose message is safe to show verbatim
//   - Severity: Debug, Info, Warning, Error, Critical
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

// Input sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrInvalidPhone indicates the WhatsApp number is not 10 digits.
	ErrInvalidPhone = New("invalid whatsapp number")
	// ErrNoFilesSelected indicates a submission without any selected file.
	ErrNoFilesSelected = New("no files selected")
	// ErrEmptyMessage indicates a chat message that is blank after trimming.
	ErrEmptyMessage = New("empty message")
	// ErrFileNotFound indicates a selected path does not exist.
	ErrFileNotFound = New("file not found")
)

// Service sentinel errors
var (
	// ErrNoResponse indicates the request never produced an HTTP response.
	ErrNoResponse = New("no response from server")
	// ErrMalformedResponse indicates the response body could not be decoded.
	ErrMalformedResponse = New("malformed response")
	// ErrNoDocument indicates the current plan has no downloadable document.
	ErrNoDocument = New("plan has no document")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// PlanError is the base interface for all studyplan errors.
type PlanError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the operation may succeed on retry.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

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

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
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
// ValidationError
// -----------------------------------------------------------------------------

// ValidationError represents local input rejected before any request.
//
// Example:
//
//	err := errors.NewValidationError("Please enter a valid 10-digit mobile number for WhatsApp.")
//	err = err.WithField("whatsapp").WithValue("12345")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError. The message is what the
// user sees.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Message returns the user-visible message without context decoration.
func (e *ValidationError) Message() string {
	return e.message
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// APIError
// -----------------------------------------------------------------------------

// APIError is a non-2xx response that carried a structured error string.
//
// Example:
//
//	err := errors.NewAPIError("/api/upload", 400, "Invalid file")
//	fmt.Println(err) // "api error [endpoint=/api/upload, status=400]: Invalid file"
type APIError struct {
	baseError
	Endpoint   string
	StatusCode int
}

// NewAPIError creates a new APIError. Server errors (5xx) are marked
// retryable.
func NewAPIError(endpoint string, status int, serverMessage string) *APIError {
	return &APIError{
		baseError: baseError{
			message:    serverMessage,
			severity:   SeverityError,
			retryable:  status >= 500,
			userFacing: true,
		},
		Endpoint:   endpoint,
		StatusCode: status,
	}
}

// ServerMessage returns the error string exactly as the server sent it.
func (e *APIError) ServerMessage() string {
	return e.message
}

// Error returns the formatted error message.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error [endpoint=%s, status=%d]: %s", e.Endpoint, e.StatusCode, e.message)
}

// Is checks if this error matches the target.
func (e *APIError) Is(target error) bool {
	if _, ok := target.(*APIError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// TransportError
// -----------------------------------------------------------------------------

// TransportError means no structured answer is available: the request
// failed in flight or the body could not be decoded.
//
// Example:
//
//	err := errors.NewTransportError("/api/chat", errors.ErrNoResponse).WithStatus(502)
type TransportError struct {
	baseError
	Endpoint   string
	StatusCode int // 0 when no response arrived
}

// NewTransportError creates a new TransportError wrapping cause.
func NewTransportError(endpoint string, cause error) *TransportError {
	return &TransportError{
		baseError: baseError{
			message:    "request failed",
			cause:      cause,
			severity:   SeverityError,
			retryable:  true,
			userFacing: false,
		},
		Endpoint: endpoint,
	}
}

// WithStatus records the HTTP status when a response arrived but was unusable.
func (e *TransportError) WithStatus(status int) *TransportError {
	e.StatusCode = status
	return e
}

// Error returns the formatted error message.
func (e *TransportError) Error() string {
	parts := []string{fmt.Sprintf("endpoint=%s", e.Endpoint)}
	if e.StatusCode != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	prefix := fmt.Sprintf("transport error [%s]", strings.Join(parts, ", "))
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *TransportError) Is(target error) bool {
	if _, ok := target.(*TransportError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// Kind names which of the three error kinds an error belongs to.
type Kind int

const (
	// KindUnknown is any error not produced by this package.
	KindUnknown Kind = iota
	KindValidation
	KindApplication
	KindTransport
)

// String returns the kind name used in log attributes.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindApplication:
		return "application"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// KindOf classifies err.
func KindOf(err error) Kind {
	var validation *ValidationError
	var api *APIError
	var transport *TransportError
	switch {
	case err == nil:
		return KindUnknown
	case As(err, &validation):
		return KindValidation
	case As(err, &api):
		return KindApplication
	case As(err, &transport):
		return KindTransport
	default:
		return KindUnknown
	}
}

// IsRetryable returns true if the error is transient and the operation may
// succeed on retry.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var planErr PlanError
	if As(err, &planErr) {
		return planErr.IsRetryable()
	}

	return Is(err, ErrNoResponse)
}

// IsUserFacing returns true if the error message is safe to display to end
// users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var planErr PlanError
	if As(err, &planErr) {
		return planErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement PlanError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var planErr PlanError
	if As(err, &planErr) {
		return planErr.Severity()
	}

	return SeverityError
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
