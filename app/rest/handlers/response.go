package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"account-service/app/domain"
)

// ErrorResponse is the JSON error body shared by all handlers
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeError maps a domain error to its HTTP representation. AuthError
// carries its own code; sentinels cover everything the gateways surface
// without a code.
func writeError(c echo.Context, err error) error {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: validationErr.Message,
			Code:  domain.ErrCodeValidation,
		})
	}

	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		return c.JSON(statusForCode(authErr.Code), ErrorResponse{
			Error: authErr.Message,
			Code:  authErr.Code,
		})
	}

	switch {
	case errors.Is(err, domain.ErrNoSession), errors.Is(err, domain.ErrSessionExpired), errors.Is(err, domain.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "authentication required",
			Code:  domain.ErrCodeUnauthorized,
		})
	case errors.Is(err, domain.ErrProfileNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "profile not found",
		})
	case errors.Is(err, domain.ErrProfileExists):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error: "profile already exists",
		})
	case errors.Is(err, domain.ErrTierLimitReached):
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Error: "tier limit reached",
			Code:  "TIER_LIMIT_REACHED",
		})
	case errors.Is(err, domain.ErrTimeout):
		return c.JSON(http.StatusGatewayTimeout, ErrorResponse{
			Error: "upstream request timed out",
			Code:  domain.ErrCodeTimeout,
		})
	case errors.Is(err, domain.ErrServiceUnavailable), errors.Is(err, domain.ErrBootstrapClosed):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "service temporarily unavailable",
			Code:  domain.ErrCodeServiceUnavailable,
		})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "internal server error",
		Code:  domain.ErrCodeInternal,
	})
}

func statusForCode(code string) int {
	switch code {
	case domain.ErrCodeInvalidCredentials, domain.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case domain.ErrCodeUserExists:
		return http.StatusConflict
	case domain.ErrCodeValidation:
		return http.StatusBadRequest
	case domain.ErrCodeFlowExpired:
		return http.StatusGone
	case domain.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case domain.ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// sessionKey identifies the caller's client instance. Each browser tab
// of the studio frontend generates one and sends it on every request.
func sessionKey(c echo.Context) string {
	return c.Request().Header.Get("X-Session-Key")
}

func requireSessionKey(c echo.Context) (string, bool) {
	key := sessionKey(c)
	if key == "" {
		return "", false
	}
	return key, true
}
