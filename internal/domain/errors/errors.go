package errors

import (
	"net/http"

	"authgate/internal/domain/entity"
	"authgate/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithCause classifies cause as e. Both e and cause stay reachable through errors.Is and errors.As,
// and e is the first AppError found in the tree.
func (e *BaseError) WithCause(cause error) error {
	if cause == nil {
		return errors.WithStack(e)
	}

	return errors.WithStack(&classifiedError{kind: e, cause: cause})
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

type classifiedError struct {
	kind  *BaseError
	cause error
}

func (e *classifiedError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *classifiedError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

// Predefined error types
var (
	// ErrValidationFailed means client input was malformed. Prefer NewValidationError,
	// which carries the individual field failures.
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"Validation failed.",
		nil,
	)

	// ErrInvalidCredentials is returned for any failed login. It never tells
	// whether the email was registered.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
		nil,
	)

	// ErrUnauthorized covers a missing, malformed, forged or expired token, and a
	// token whose subject no longer exists.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Not authenticated.",
		nil,
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed.",
		nil,
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later.",
		nil,
	)

	// Token validation failures. The usecase layer reports all of them as ErrUnauthorized.
	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"Token is malformed.",
		nil,
	)

	ErrTokenInvalidSignature = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID_SIGNATURE",
		"Token signature is invalid.",
		nil,
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired.",
		nil,
	)
)

// ValidationError is ErrValidationFailed carrying the validator's field failures.
type ValidationError struct {
	Failures []entity.FieldError
}

// NewValidationError creates a validation error from the given failures.
func NewValidationError(failures []entity.FieldError) *ValidationError {
	return &ValidationError{Failures: failures}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Failures) == 0 {
		return ErrValidationFailed.Error()
	}

	return ErrValidationFailed.Error() + " " + e.Failures[0].Field + ": " + e.Failures[0].Message
}

// Is makes errors.Is(err, ErrValidationFailed) hold for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return ErrValidationFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns the field failures
func (e *ValidationError) Details() any {
	return e.Failures
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
