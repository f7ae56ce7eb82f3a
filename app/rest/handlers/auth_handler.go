package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"account-service/app/port"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// LoginRequest is the password login/signup request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// IdentityResponse is returned by successful auth actions
type IdentityResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// OAuthRequest selects the OIDC provider for a social login
type OAuthRequest struct {
	Provider string `json:"provider" validate:"required"`
	ReturnTo string `json:"return_to,omitempty"`
}

// OAuthResponse carries the provider redirect URL. Navigating there is
// the next step of the flow, not an error condition.
type OAuthResponse struct {
	RedirectURL string `json:"redirect_url"`
}

// Login handles password login
// @Summary Password login
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} IdentityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	key, ok := requireSessionKey(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "X-Session-Key header is required"})
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	h.logger.Info("login attempt",
		"email", req.Email,
		"session_key", key,
		"ip", c.RealIP())

	identity, err := h.authUsecase.PasswordLogin(c.Request().Context(), key, req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, IdentityResponse{
		ID:    identity.ID.String(),
		Email: identity.Email,
	})
}

// Signup handles password registration
// @Summary Password signup
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 201 {object} IdentityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	key, ok := requireSessionKey(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "X-Session-Key header is required"})
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	h.logger.Info("signup attempt",
		"email", req.Email,
		"session_key", key,
		"ip", c.RealIP())

	identity, err := h.authUsecase.PasswordSignup(c.Request().Context(), key, req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, IdentityResponse{
		ID:    identity.ID.String(),
		Email: identity.Email,
	})
}

// OAuth starts a social login flow
// @Summary Start OIDC login
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body OAuthRequest true "Provider selection"
// @Success 200 {object} OAuthResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/auth/oauth [post]
func (h *AuthHandler) OAuth(c echo.Context) error {
	key, ok := requireSessionKey(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "X-Session-Key header is required"})
	}

	var req OAuthRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	redirectURL, err := h.authUsecase.OAuthLogin(c.Request().Context(), key, req.Provider, req.ReturnTo)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OAuthResponse{RedirectURL: redirectURL})
}

// Logout revokes the provider session and signs the client out
// @Summary Logout
// @Tags authentication
// @Produce json
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	key, ok := requireSessionKey(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "X-Session-Key header is required"})
	}

	sessionToken := c.Request().Header.Get("X-Session-Token")

	if err := h.authUsecase.Logout(c.Request().Context(), key, sessionToken); err != nil {
		h.logger.Warn("logout finished with provider error", "session_key", key, "error", err)
		// the local session is already signed out; report the degraded
		// revocation instead of failing the whole action
		return c.JSON(http.StatusOK, map[string]string{
			"status": "signed_out_locally",
		})
	}

	return c.NoContent(http.StatusNoContent)
}
