package errors

import (
	"net/http"

	"github.com/pkg/errors"
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
	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductDisabled = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_DISABLED",
		"Product is not available in the storefront",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Order status transition is not allowed",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Cart is empty",
		"",
	)

	// Authentication-related errors
	ErrInvalidOTP = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_OTP",
		"Invalid OTP",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrDiscountAbovePrice = NewBaseError(
		http.StatusBadRequest,
		"DISCOUNT_ABOVE_PRICE",
		"Discount price must not exceed the base price",
		"",
	)
)

// NewSnapshotCorruptError marks a stored snapshot that could not be decoded.
// The read is fatal; no partial recovery is attempted.
func NewSnapshotCorruptError(err error, details string) *BaseError {
	base := NewBaseError(
		http.StatusInternalServerError,
		"SNAPSHOT_CORRUPT",
		"Stored snapshot is unreadable",
		details,
	)
	if err != nil {
		base.details = base.details + ": " + err.Error()
	}

	return base
}

// NewStoreError wraps an unexpected persistence failure.
func NewStoreError(err error, details string) *BaseError {
	base := NewBaseError(
		http.StatusInternalServerError,
		"STORE_FAILURE",
		"Persistent store operation failed",
		details,
	)
	if err != nil {
		base.details = base.details + ": " + err.Error()
	}

	return base
}
