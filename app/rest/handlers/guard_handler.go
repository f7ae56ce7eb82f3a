package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"account-service/app/domain"
	"account-service/app/port"
	"account-service/app/rest/middleware"
)

// GuardHandler exposes the route guard's decision so the frontend can
// gate client-side navigation with the same table the server enforces.
type GuardHandler struct {
	bootstrap port.BootstrapUsecase
	table     *domain.TierTable
	logger    *slog.Logger
}

// NewGuardHandler creates a new guard handler
func NewGuardHandler(bootstrap port.BootstrapUsecase, table *domain.TierTable, logger *slog.Logger) *GuardHandler {
	return &GuardHandler{
		bootstrap: bootstrap,
		table:     table,
		logger:    logger,
	}
}

// Decision evaluates the guard for a tier/feature requirement
// @Summary Guard decision
// @Tags guard
// @Produce json
// @Param tier query string false "Required tier"
// @Param feature query string false "Required feature"
// @Success 200 {object} middleware.GuardResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/guard/decision [get]
func (h *GuardHandler) Decision(c echo.Context) error {
	key, ok := requireSessionKey(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "X-Session-Key header is required"})
	}

	req := domain.GuardRequirement{
		Tier:    domain.TierName(c.QueryParam("tier")),
		Feature: c.QueryParam("feature"),
	}

	session := h.bootstrap.Snapshot(key)
	if session == nil || session.Resolving() {
		cookieHeader := c.Request().Header.Get("Cookie")
		resolved, err := h.bootstrap.Bootstrap(c.Request().Context(), key, cookieHeader)
		if err != nil {
			return writeError(c, err)
		}
		session = resolved
	}

	decision := domain.Decide(session, req, h.table)

	response := middleware.GuardResponse{Decision: decision}
	switch decision {
	case domain.GuardRedirectLogin:
		response.Redirect = "/auth/login"
	case domain.GuardRedirectHome:
		response.Redirect = "/"
	}

	return c.JSON(http.StatusOK, response)
}
