package errors

import (
	"net/http"

	"potluck/internal/errors"
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

// Is matches on error code, so a WithDetails copy still compares equal to
// the predefined error it came from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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
	// Authentication-related errors
	ErrAuthenticationRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"Must be logged in!",
		"",
	)

	// ErrInvalidCredentials covers both "no such user" and "wrong password".
	// The single message is deliberate: callers must not be able to probe
	// which emails are registered.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Please check your email and password.",
		"",
	)

	ErrNotLoggedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_LOGGED_IN",
		"You are not logged in!",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Your session is invalid or has expired. Please log in again.",
		"",
	)

	// User-related errors
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_EMAIL",
		"User with that email already exists!",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"That user does not exist.",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create the user.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process the password.",
		"",
	)

	// Dish-related errors
	ErrDishNotFound = NewBaseError(
		http.StatusNotFound,
		"DISH_NOT_FOUND",
		"That dish does not exist.",
		"",
	)

	ErrNotDishOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_DISH_OWNER",
		"This is not your dish, so you can't change it.",
		"",
	)

	ErrDishNotInCollection = NewBaseError(
		http.StatusForbidden,
		"DISH_NOT_IN_COLLECTION",
		"You can't complete a dish you haven't added.",
		"",
	)

	// Category-related errors
	ErrCategoryAlreadyExists = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_CATEGORY",
		"The category you typed already exists. Please use that.",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"That category does not exist.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Some fields are invalid.",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found.",
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
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
