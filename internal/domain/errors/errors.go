package errors

import (
	"net/http"

	"trafficalert/internal/errors"
)

// Dispatch failure taxonomy. Each one scopes a failure to the smallest unit that can be skipped.
var (
	// ErrStoreUnavailable aborts the whole cycle; it is retried on the next tick.
	ErrStoreUnavailable = errors.New("subscriber store unavailable")
	// ErrFetchFailed skips a single area for the current cycle.
	ErrFetchFailed = errors.New("feed fetch failed")
	// ErrFormat skips a single message/subscriber pair.
	ErrFormat = errors.New("message format failed")
	// ErrDeliveryFailed skips a single channel attempt.
	ErrDeliveryFailed = errors.New("notification delivery failed")
	// ErrRemoveFailed leaves an expired subscriber in place until the next cycle.
	ErrRemoveFailed = errors.New("subscriber removal failed")
	// ErrTouchFailed means last-seen could not be advanced after a delivery.
	ErrTouchFailed = errors.New("subscriber touch failed")
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

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError with the same error code, so WithDetails copies still match their sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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
	// Subscriber-related errors
	ErrSubscriberNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIBER_NOT_FOUND",
		"Subscriber not found",
		"",
	)

	ErrSubscriberAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SUBSCRIBER_ALREADY_EXISTS",
		"A subscriber with this email or phone is already registered",
		"",
	)

	ErrIdentityConflict = NewBaseError(
		http.StatusConflict,
		"IDENTITY_CONFLICT",
		"The email and phone belong to different subscribers",
		"",
	)

	ErrMissingContact = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CONTACT",
		"Either email or phone must be provided",
		"",
	)

	// Geo-related errors
	ErrAreaNotFound = NewBaseError(
		http.StatusUnprocessableEntity,
		"AREA_NOT_FOUND",
		"No traffic area covers the given coordinates",
		"",
	)

	ErrAreaLookupFailed = NewBaseError(
		http.StatusBadGateway,
		"AREA_LOOKUP_FAILED",
		"Traffic area lookup failed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
