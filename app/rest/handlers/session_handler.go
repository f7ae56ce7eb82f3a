package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"account-service/app/domain"
	"account-service/app/port"
)

// SessionHandler exposes the session bootstrap over HTTP
type SessionHandler struct {
	bootstrap port.BootstrapUsecase
	logger    *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(bootstrap port.BootstrapUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		bootstrap: bootstrap,
		logger:    logger,
	}
}

// SessionResponse is the client-facing view of a session
type SessionResponse struct {
	State       domain.SessionState `json:"state"`
	Initialized bool                `json:"initialized"`
	Identity    *domain.Identity    `json:"identity,omitempty"`
	Profile     *domain.Profile     `json:"profile,omitempty"`
}

func sessionResponse(session *domain.Session) SessionResponse {
	return SessionResponse{
		State:       session.State,
		Initialized: session.Initialized,
		Identity:    session.Identity,
		Profile:     session.Profile,
	}
}

// Get resolves the caller's session. The first call for a session key
// runs the full bootstrap; subsequent calls re-check against the
// identity provider and land behind the sequence guard.
// @Summary Resolve session
// @Tags session
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	key, ok := requireSessionKey(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "X-Session-Key header is required"})
	}

	cookieHeader := c.Request().Header.Get("Cookie")

	session, err := h.bootstrap.Bootstrap(c.Request().Context(), key, cookieHeader)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, sessionResponse(session))
}

// Snapshot returns the current session state without triggering a check
// @Summary Session snapshot
// @Tags session
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/session/snapshot [get]
func (h *SessionHandler) Snapshot(c echo.Context) error {
	key, ok := requireSessionKey(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "X-Session-Key header is required"})
	}

	session := h.bootstrap.Snapshot(key)
	if session == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "no session for this key"})
	}

	return c.JSON(http.StatusOK, sessionResponse(session))
}

// Reset is the manual recovery action for a wedged session
// @Summary Reset session
// @Tags session
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/session/reset [post]
func (h *SessionHandler) Reset(c echo.Context) error {
	key, ok := requireSessionKey(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "X-Session-Key header is required"})
	}

	h.logger.Info("manual session reset requested", "session_key", key, "ip", c.RealIP())

	session := h.bootstrap.Reset(key)
	return c.JSON(http.StatusOK, sessionResponse(session))
}
