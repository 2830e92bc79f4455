package errors

import "fmt"

// ErrorCode represents a senzu error code.
type ErrorCode string

const (
	ErrInvalidRequest      ErrorCode = "INVALID_REQUEST"      // 400
	ErrNotFound            ErrorCode = "NOT_FOUND"            // 404
	ErrUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE" // 502
	ErrUpstreamStatus      ErrorCode = "UPSTREAM_STATUS"      // 502
	ErrDecodeFailed        ErrorCode = "DECODE_FAILED"        // 502
	ErrTranslationFailed   ErrorCode = "TRANSLATION_FAILED"   // non-fatal, callers fall back to source text
	ErrInternal            ErrorCode = "INTERNAL"             // 500
)

// SenzuError represents a structured error with code, status, and details.
type SenzuError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *SenzuError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *SenzuError {
	return &SenzuError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a resource the upstream API does not have.
func NewNotFound(identifier string) *SenzuError {
	return &SenzuError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("resource not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewUpstreamUnavailable creates a 502 error for transport-level failures
// reaching the Dragon Ball API.
func NewUpstreamUnavailable(err error) *SenzuError {
	return &SenzuError{
		Code:    ErrUpstreamUnavailable,
		Status:  502,
		Message: fmt.Sprintf("dragon ball api unreachable: %v", err),
	}
}

// NewUpstreamStatus creates a 502 error for an unexpected upstream status code.
func NewUpstreamStatus(status int, url string) *SenzuError {
	return &SenzuError{
		Code:    ErrUpstreamStatus,
		Status:  502,
		Message: fmt.Sprintf("dragon ball api returned status %d", status),
		Details: map[string]any{"upstream_status": status, "url": url},
	}
}

// NewDecodeFailed creates a 502 error for malformed upstream payloads.
func NewDecodeFailed(err error) *SenzuError {
	return &SenzuError{
		Code:    ErrDecodeFailed,
		Status:  502,
		Message: fmt.Sprintf("failed to decode api response: %v", err),
	}
}

// NewTranslationFailed wraps a translation backend error. Callers fall back
// to the untranslated source text rather than surface this to the user.
func NewTranslationFailed(err error) *SenzuError {
	return &SenzuError{
		Code:    ErrTranslationFailed,
		Status:  502,
		Message: fmt.Sprintf("translation failed: %v", err),
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *SenzuError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &SenzuError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a SenzuError with the given code.
func Is(err error, code ErrorCode) bool {
	if sErr, ok := err.(*SenzuError); ok {
		return sErr.Code == code
	}
	return false
}
