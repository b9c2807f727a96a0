// Package errors defines the application error taxonomy surfaced by the
// service layer and translated to protocol statuses by the delivery layer.
package errors

import (
	"net/http"

	"opinator/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
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
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation: malformed or out-of-constraint input fields.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// NotFound: a primary or foreign-key id does not resolve to a stored row.
	ErrResourceNotFound = NewBaseError(
		http.StatusNotFound,
		"RESOURCE_NOT_FOUND",
		"resource not found",
		"",
	)

	// Conflict family.
	ErrUniqueValue = NewBaseError(
		http.StatusConflict,
		"UNIQUE_VALUE",
		"value already in use",
		"",
	)

	ErrOnlyOneReviewPerUser = NewBaseError(
		http.StatusConflict,
		"ONLY_ONE_REVIEW_PER_USER",
		"user has already reviewed this product",
		"",
	)

	ErrOnlyOneVotePerUser = NewBaseError(
		http.StatusConflict,
		"ONLY_ONE_VOTE_PER_USER",
		"user has already voted on this review",
		"",
	)

	ErrEntityAssociated = NewBaseError(
		http.StatusConflict,
		"ENTITY_ASSOCIATED",
		"entity still has associated children",
		"",
	)

	// Unauthorized family.
	ErrOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"OWNERSHIP_VIOLATION",
		"authenticated user does not own this resource",
		"",
	)

	ErrEmailImmutable = NewBaseError(
		http.StatusForbidden,
		"EMAIL_IMMUTABLE",
		"email cannot be changed after creation",
		"",
	)

	// Unauthenticated: no usable identity in the call context.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"no verified identity available",
		"",
	)

	// EmptyResponse: a supposedly-successful operation yielded no value.
	ErrEmptyResponse = NewBaseError(
		http.StatusInternalServerError,
		"EMPTY_RESPONSE",
		"operation produced no result",
		"",
	)

	// Transaction-related errors.
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
