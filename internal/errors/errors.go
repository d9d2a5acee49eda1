package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound          = new(ErrCodeNotFound, "resource not found")
	ErrValidation        = new(ErrCodeValidation, "validation error")
	ErrInvalidOperation  = new(ErrCodeInvalidOperation, "invalid operation")
	ErrMissingPeriodData = new(ErrCodeMissingPeriodData, "billing period bounds not found in any known schema location")
	ErrMissingPriceData  = new(ErrCodeMissingPriceData, "recurring price not found in any known schema location")
	ErrUpstream          = new(ErrCodeUpstream, "upstream payment platform error")
	ErrHTTPClient        = new(ErrCodeHTTPClient, "http client error")
	ErrSystem            = new(ErrCodeSystemError, "system error")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrNotFound:          http.StatusNotFound,
		ErrValidation:        http.StatusBadRequest,
		ErrInvalidOperation:  http.StatusBadRequest,
		ErrMissingPeriodData: http.StatusUnprocessableEntity,
		ErrMissingPriceData:  http.StatusUnprocessableEntity,
		// Upstream failures surface as client-facing 400s carrying the
		// upstream message, matching how the boundary reports them.
		ErrUpstream:   http.StatusBadRequest,
		ErrHTTPClient: http.StatusInternalServerError,
		ErrSystem:     http.StatusInternalServerError,
	}
)

const (
	ErrCodeNotFound          = "not_found"
	ErrCodeValidation        = "validation_error"
	ErrCodeInvalidOperation  = "invalid_operation"
	ErrCodeMissingPeriodData = "missing_period_data"
	ErrCodeMissingPriceData  = "missing_price_data"
	ErrCodeUpstream          = "upstream_error"
	ErrCodeHTTPClient        = "http_client_error"
	ErrCodeSystemError       = "system_error"
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

// new creates a new InternalError
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

// IsInvalidOperation checks if an error is an invalid operation error
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

// IsMissingPeriodData checks if an error is a missing period data error
func IsMissingPeriodData(err error) bool {
	return errors.Is(err, ErrMissingPeriodData)
}

// IsMissingPriceData checks if an error is a missing price data error
func IsMissingPriceData(err error) bool {
	return errors.Is(err, ErrMissingPriceData)
}

// IsUpstream checks if an error originated in the upstream platform client
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
