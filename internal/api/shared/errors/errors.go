package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"

	// ErrCodeServiceUnavailable is returned when the language model is not configured or not answering
	ErrCodeServiceUnavailable ErrorCode = "service_unavailable"
)

// APIError is the error body returned by every endpoint
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// HTTPStatus maps the error code to its HTTP status
func (e *APIError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeBadRequest, ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// AsAPIError unwraps err into an APIError, anything else becomes an internal error
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}
	return NewInternalError("Internal server error")
}

func newError(code ErrorCode, message string, details []string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewBadRequestError(message string, details ...string) *APIError {
	return newError(ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(ErrCodeNotFound, message, details)
}

func NewValidationError(details ...string) *APIError {
	return newError(ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newError(ErrCodeUnauthorized, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(ErrCodeInternalError, message, details)
}

func NewDatabaseError(message string, details ...string) *APIError {
	return newError(ErrCodeDatabaseError, message, details)
}

func NewServiceUnavailableError(message string, details ...string) *APIError {
	return newError(ErrCodeServiceUnavailable, message, details)
}
