package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation is returned when a required input field is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicateIdentity is returned when registering an email that is already taken.
	ErrDuplicateIdentity = errors.New("email already registered")
	// ErrUnauthorized is returned for every credential that cannot be resolved to a user.
	ErrUnauthorized = errors.New("invalid authentication credentials")
	// ErrNotFound is returned by stores when no document matches a filter.
	ErrNotFound = errors.New("record not found")
	// ErrStoreUnavailable is returned when the underlying store fails.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// StoreError wraps a backend failure so it matches ErrStoreUnavailable.
func StoreError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

// Validation wraps a field-level failure so it matches ErrValidation.
func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are
// matched with errors.Is; internal detail never reaches the message except
// for validation failures, which describe the offending input.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrDuplicateIdentity):
		return NewHTTPError(http.StatusBadRequest, ErrDuplicateIdentity.Error(), "EMAIL_ALREADY_REGISTERED")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthorized.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrStoreUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, ErrStoreUnavailable.Error(), "STORE_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
