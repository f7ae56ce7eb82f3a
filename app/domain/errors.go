package domain

import (
	"context"
	"errors"
	"net"
)

// Session and profile resolution errors
var (
	// Identity/session errors
	ErrNoSession      = errors.New("no active session")
	ErrSessionExpired = errors.New("session expired")
	ErrUnauthorized   = errors.New("unauthorized")

	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")

	// Gate errors
	ErrTierLimitReached = errors.New("tier limit reached")

	// Transport classification
	ErrTimeout            = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service unavailable")

	// Bootstrap errors
	ErrBootstrapClosed = errors.New("session bootstrap closed")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)

// AuthError represents a user-facing authentication failure with a
// stable code and a single human-readable message.
type AuthError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError creates a new authentication error
func NewAuthError(code, message string, cause error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Auth error codes surfaced to the rendering layer
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUserExists         = "USER_EXISTS"
	ErrCodeValidation         = "VALIDATION_FAILED"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeFlowExpired        = "FLOW_EXPIRED"
	ErrCodeTimeout            = "TIMEOUT"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeUnknown            = "UNKNOWN"
)

// IsTimeout reports whether err belongs to the timeout class of the
// error taxonomy. Only this class is retried by the profile resolver
// and tolerated by the passive bootstrap path. Raw context deadlines
// and net timeouts count even when a driver wrapped them without
// classifying first.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Code == ErrCodeTimeout
	}
	return false
}

// IsNotFound reports whether err is the expected not-found variant that
// triggers default profile creation. Any other error must not.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProfileNotFound)
}

// ValidationError represents a field-level validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
