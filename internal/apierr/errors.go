package apierr

import (
	"fmt"
	"net/http"
	"strings"
)

// ValidationIssue describes one failed field constraint.
type ValidationIssue struct {
	// Field is the dotted path of the offending field.
	Field string
	// Message explains the failed constraint.
	Message string
	// RejectedValue is the value that failed validation.
	RejectedValue any
}

// ValidationError carries the ordered list of failed field constraints.
// Issues keep the order in which constraints were evaluated and are not
// deduplicated.
type ValidationError struct {
	Issues []ValidationIssue

	stack stack
}

// NewValidationError builds a [ValidationError] from issues.
func NewValidationError(issues ...ValidationIssue) *ValidationError {
	return &ValidationError{
		Issues: issues,
		stack:  callers(),
	}
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+": "+issue.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// StackTrace returns the stack captured where the error was raised.
func (e *ValidationError) StackTrace() string {
	return e.stack.String()
}

// ApplicationError is an explicit rejection carrying its own HTTP status,
// typically 4xx.
type ApplicationError struct {
	StatusCode int
	Message    string
	Err        error

	stack stack
}

// New builds an [ApplicationError] with the given status and message.
func New(statusCode int, message string) *ApplicationError {
	return &ApplicationError{
		StatusCode: statusCode,
		Message:    message,
		stack:      callers(),
	}
}

// Wrap builds an [ApplicationError] that keeps err as its cause.
func Wrap(err error, statusCode int, message string) *ApplicationError {
	return &ApplicationError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
		stack:      callers(),
	}
}

// BadRequest, NotFound, Conflict and friends are shorthands for [New].
func BadRequest(message string) *ApplicationError { return newAt(http.StatusBadRequest, message) }
func Unauthorized(message string) *ApplicationError {
	return newAt(http.StatusUnauthorized, message)
}
func Forbidden(message string) *ApplicationError { return newAt(http.StatusForbidden, message) }
func NotFound(message string) *ApplicationError  { return newAt(http.StatusNotFound, message) }
func Conflict(message string) *ApplicationError  { return newAt(http.StatusConflict, message) }
func Unprocessable(message string) *ApplicationError {
	return newAt(http.StatusUnprocessableEntity, message)
}
func Unavailable(message string) *ApplicationError {
	return newAt(http.StatusServiceUnavailable, message)
}

func newAt(statusCode int, message string) *ApplicationError {
	return &ApplicationError{
		StatusCode: statusCode,
		Message:    message,
		stack:      callersSkip(1),
	}
}

func (e *ApplicationError) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *ApplicationError) Unwrap() error {
	return e.Err
}

// StackTrace returns the stack captured where the error was raised.
func (e *ApplicationError) StackTrace() string {
	return e.stack.String()
}

// UnclassifiedError wraps a failure with no explicit classification.
type UnclassifiedError struct {
	Err error

	trace string
}

// Unclassified wraps err and captures the current stack.
func Unclassified(err error) *UnclassifiedError {
	return &UnclassifiedError{Err: err, trace: callers().String()}
}

// FromPanic turns a recovered panic value into an [UnclassifiedError]
// carrying the panic-site stack (as returned by debug.Stack).
func FromPanic(recovered any, panicStack []byte) *UnclassifiedError {
	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", recovered)
	}

	return &UnclassifiedError{Err: err, trace: string(panicStack)}
}

func (e *UnclassifiedError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *UnclassifiedError) Unwrap() error {
	return e.Err
}

// StackTrace returns the stack captured when the error was wrapped.
func (e *UnclassifiedError) StackTrace() string {
	return e.trace
}
