package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"account-service/app/domain"
	"account-service/app/gateway"
	"account-service/app/port"
	"account-service/app/rest/middleware"
)

// ProfileHandler handles profile HTTP requests. All routes sit behind
// the guard middleware, which puts the resolved identity in context.
type ProfileHandler struct {
	profileUsecase port.ProfileUsecase
	profileGateway port.ProfileGateway
	logger         *slog.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase port.ProfileUsecase, profileGateway port.ProfileGateway, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		profileGateway: profileGateway,
		logger:         logger,
	}
}

// RenameRequest updates the profile display name
type RenameRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=80"`
}

func identityFromContext(c echo.Context) (*domain.Identity, bool) {
	identity, ok := c.Get(middleware.ContextIdentityKey).(*domain.Identity)
	return identity, ok && identity != nil
}

// Get returns the caller's profile
// @Summary Get profile
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	identity, ok := identityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	profile, err := h.profileUsecase.GetProfile(c.Request().Context(), identity.ID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// Rename updates the caller's display name
// @Summary Rename profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body RenameRequest true "New display name"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/profile [patch]
func (h *ProfileHandler) Rename(c echo.Context) error {
	identity, ok := identityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	var req RenameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	profile, err := h.profileUsecase.Rename(c.Request().Context(), identity.ID, req.DisplayName)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// RecordPhotosphere records a new photosphere against the tier limit
// @Summary Record photosphere creation
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Tier limit reached"
// @Router /v1/profile/photospheres [post]
func (h *ProfileHandler) RecordPhotosphere(c echo.Context) error {
	identity, ok := identityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	profile, err := h.profileUsecase.RecordPhotosphereCreated(c.Request().Context(), identity.ID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// RecordPhoto records a photo upload against the tier limit
// @Summary Record photo upload
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Tier limit reached"
// @Router /v1/profile/photos [post]
func (h *ProfileHandler) RecordPhoto(c echo.Context) error {
	identity, ok := identityFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	profile, err := h.profileUsecase.RecordPhotoUploaded(c.Request().Context(), identity.ID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// Import accepts a raw profile row exported from the previous hosted
// backend and stores it. Field names are validated one by one; anything
// missing falls back to an explicit default.
// @Summary Import legacy profile row
// @Tags profile
// @Accept json
// @Produce json
// @Success 201 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/internal/profiles/import [post]
func (h *ProfileHandler) Import(c echo.Context) error {
	var row map[string]interface{}
	if err := c.Bind(&row); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	profile, err := gateway.MapProfileRow(row)
	if err != nil {
		return writeError(c, err)
	}

	h.logger.Info("importing legacy profile row", "identity_id", profile.ID, "tier", profile.Tier)

	created, err := h.profileGateway.CreateProfile(c.Request().Context(), profile)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}
