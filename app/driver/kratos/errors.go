package kratos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"account-service/app/domain"

	kratosclient "github.com/ory/kratos-client-go"
)

// transformKratosError transforms Kratos API errors into the domain
// taxonomy: timeout, not-found, service-error.
func (a *KratosClientAdapter) transformKratosError(err error, httpResp *http.Response, operation string) error {
	a.logger.Error("kratos call failed",
		"operation", operation,
		"error", err,
		"http_status", getHTTPStatus(httpResp))

	// Timeout classification first: deadline and net timeouts are the
	// only errors the passive bootstrap path tolerates.
	if isTimeoutErr(err) {
		return domain.NewAuthError(domain.ErrCodeTimeout,
			fmt.Sprintf("Kratos %s timed out", operation), domain.ErrTimeout)
	}

	if kratosErr, ok := err.(*kratosclient.GenericOpenAPIError); ok {
		if classified := a.parseGenericError(kratosErr, operation); classified != nil {
			return classified
		}
	}

	if httpResp != nil {
		return a.parseHTTPStatusError(httpResp.StatusCode, operation, err)
	}

	return domain.NewAuthError(domain.ErrCodeInternal,
		fmt.Sprintf("Kratos %s failed", operation), err)
}

// parseGenericError inspects the response body of a GenericOpenAPIError
func (a *KratosClientAdapter) parseGenericError(kratosErr *kratosclient.GenericOpenAPIError, operation string) error {
	var errorResp map[string]interface{}
	if jsonErr := json.Unmarshal(kratosErr.Body(), &errorResp); jsonErr != nil {
		return a.classifyErrorMessage(string(kratosErr.Body()), operation)
	}

	if ui, ok := errorResp["ui"].(map[string]interface{}); ok {
		if messages, ok := ui["messages"].([]interface{}); ok {
			for _, msg := range messages {
				if msgMap, ok := msg.(map[string]interface{}); ok {
					if text, ok := msgMap["text"].(string); ok {
						if classified := a.classifyErrorMessage(text, operation); classified != nil {
							return classified
						}
					}
				}
			}
		}
	}

	if message, ok := errorResp["message"].(string); ok {
		return a.classifyErrorMessage(message, operation)
	}

	if errorObj, ok := errorResp["error"].(map[string]interface{}); ok {
		if message, ok := errorObj["message"].(string); ok {
			return a.classifyErrorMessage(message, operation)
		}
	}

	return nil
}

// parseHTTPStatusError maps HTTP status codes to domain errors
func (a *KratosClientAdapter) parseHTTPStatusError(statusCode int, operation string, originalErr error) error {
	switch statusCode {
	case http.StatusUnauthorized:
		// whoami without a valid cookie is the normal "no session" case
		if operation == "whoami" {
			return domain.ErrNoSession
		}
		return domain.NewAuthError(domain.ErrCodeUnauthorized, "Authentication failed", originalErr)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.NewAuthError(domain.ErrCodeValidation, "Invalid request data", originalErr)
	case http.StatusNotFound:
		return domain.NewAuthError(domain.ErrCodeUnknown, "Resource not found", originalErr)
	case http.StatusConflict:
		return domain.NewAuthError(domain.ErrCodeUserExists, "User already exists", originalErr)
	case http.StatusGone:
		return domain.NewAuthError(domain.ErrCodeFlowExpired, "Flow has expired", originalErr)
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return domain.NewAuthError(domain.ErrCodeServiceUnavailable,
			"Authentication service is temporarily unavailable", domain.ErrServiceUnavailable)
	case http.StatusGatewayTimeout:
		return domain.NewAuthError(domain.ErrCodeTimeout, "Request timeout", domain.ErrTimeout)
	default:
		return domain.NewAuthError(domain.ErrCodeInternal,
			fmt.Sprintf("HTTP %d: %s failed", statusCode, operation), originalErr)
	}
}

// classifyErrorMessage classifies error messages into specific domain errors
func (a *KratosClientAdapter) classifyErrorMessage(message, operation string) error {
	messageLower := strings.ToLower(message)

	if containsAny(messageLower, []string{"invalid credentials", "wrong password", "authentication failed", "the provided credentials are invalid"}) {
		return domain.NewAuthError(domain.ErrCodeInvalidCredentials, "Invalid email or password", nil)
	}

	if containsAny(messageLower, []string{"already exists", "already registered", "duplicate"}) {
		return domain.NewAuthError(domain.ErrCodeUserExists, "An account with this email already exists", nil)
	}

	if containsAny(messageLower, []string{"password policy", "password too weak", "password must", "breached", "similar to"}) {
		return domain.NewValidationError("password", nil, "Password does not meet security requirements")
	}

	if containsAny(messageLower, []string{"invalid email", "email format", "is not valid \"email\""}) {
		return domain.NewValidationError("email", nil, "Invalid email format")
	}

	if containsAny(messageLower, []string{"flow expired", "expired flow", "flow has expired"}) {
		return domain.NewAuthError(domain.ErrCodeFlowExpired, "Authentication flow has expired. Please start over.", nil)
	}

	if containsAny(messageLower, []string{"session not found", "no active session", "session expired"}) {
		return domain.ErrNoSession
	}

	if containsAny(messageLower, []string{"connection refused", "timeout", "service unavailable"}) {
		return domain.NewAuthError(domain.ErrCodeServiceUnavailable,
			"Authentication service is temporarily unavailable", domain.ErrServiceUnavailable)
	}

	return domain.NewAuthError(domain.ErrCodeUnknown,
		fmt.Sprintf("Authentication error: %s", message), nil)
}

// isTimeoutErr reports whether the transport error is a timeout
func isTimeoutErr(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	// The generated client wraps transport errors in url.Error text
	return strings.Contains(strings.ToLower(err.Error()), "context deadline exceeded") ||
		strings.Contains(strings.ToLower(err.Error()), "client.timeout exceeded")
}

// Helper functions

func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func containsAny(text string, substrings []string) bool {
	for _, substring := range substrings {
		if strings.Contains(text, substring) {
			return true
		}
	}
	return false
}
