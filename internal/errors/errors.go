package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound       = new(ErrCodeNotFound, "resource not found")
	ErrValidation     = new(ErrCodeValidation, "validation error")
	ErrBadGateway     = new(ErrCodeBadGateway, "upstream service failure")
	ErrNotImplemented = new(ErrCodeNotImplemented, "not implemented")
	ErrHTTPClient     = new(ErrCodeHTTPClient, "http client error")
	ErrSystem         = new(ErrCodeSystemError, "system error")
	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrNotFound:       http.StatusNotFound,
		ErrValidation:     http.StatusBadRequest,
		ErrBadGateway:     http.StatusBadGateway,
		ErrNotImplemented: http.StatusNotImplemented,
		ErrHTTPClient:     http.StatusInternalServerError,
		ErrSystem:         http.StatusInternalServerError,
	}
)

const (
	ErrCodeNotFound       = "not_found"
	ErrCodeValidation     = "validation_error"
	ErrCodeBadGateway     = "bad_gateway"
	ErrCodeNotImplemented = "not_implemented"
	ErrCodeHTTPClient     = "http_client_error"
	ErrCodeSystemError    = "system_error"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

// New creates a new InternalError
func New(code string, message string) *InternalError {
	return new(code, message)
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsBadGateway checks if an error is an upstream failure error
func IsBadGateway(err error) bool {
	return errors.Is(err, ErrBadGateway)
}

// IsNotImplemented checks if an error is a not implemented error
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

// IsHTTPClient checks if an error is an http client error
func IsHTTPClient(err error) bool {
	return errors.Is(err, ErrHTTPClient)
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
