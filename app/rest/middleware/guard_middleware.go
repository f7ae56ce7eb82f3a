package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"account-service/app/domain"
	"account-service/app/port"
)

// Context keys set by the guard for downstream handlers
const (
	ContextIdentityKey = "identity"
	ContextProfileKey  = "profile"
	ContextSessionKey  = "session_key"
)

// GuardMiddleware protects routes with the tier gate. A request whose
// session is still resolving blocks on the bootstrap instead of being
// denied: deciding early would bounce authenticated users to login.
type GuardMiddleware struct {
	bootstrap port.BootstrapUsecase
	table     *domain.TierTable
	logger    *slog.Logger
}

// NewGuardMiddleware creates a new guard middleware
func NewGuardMiddleware(bootstrap port.BootstrapUsecase, table *domain.TierTable, logger *slog.Logger) *GuardMiddleware {
	return &GuardMiddleware{
		bootstrap: bootstrap,
		table:     table,
		logger:    logger,
	}
}

// GuardResponse tells the client what the guard decided and where to go
type GuardResponse struct {
	Decision domain.GuardDecision `json:"decision"`
	Redirect string               `json:"redirect,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// RequireSession admits authenticated sessions only
func (m *GuardMiddleware) RequireSession() echo.MiddlewareFunc {
	return m.require(domain.GuardRequirement{})
}

// RequireTier admits sessions whose profile is at or above the tier
func (m *GuardMiddleware) RequireTier(tier domain.TierName) echo.MiddlewareFunc {
	return m.require(domain.GuardRequirement{Tier: tier})
}

// RequireFeature admits sessions whose tier grants the feature
func (m *GuardMiddleware) RequireFeature(feature string) echo.MiddlewareFunc {
	return m.require(domain.GuardRequirement{Feature: feature})
}

func (m *GuardMiddleware) require(req domain.GuardRequirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get("X-Session-Key")
			if key == "" {
				return c.JSON(http.StatusBadRequest, GuardResponse{
					Decision: domain.GuardRedirectLogin,
					Redirect: "/auth/login",
					Error:    "X-Session-Key header is required",
				})
			}

			session, err := m.Resolve(c, key)
			if err != nil {
				return c.JSON(http.StatusServiceUnavailable, GuardResponse{
					Decision: domain.GuardLoading,
					Error:    "session could not be resolved",
				})
			}

			decision := domain.Decide(session, req, m.table)
			switch decision {
			case domain.GuardAllow:
				c.Set(ContextIdentityKey, session.Identity)
				c.Set(ContextProfileKey, session.Profile)
				c.Set(ContextSessionKey, key)
				return next(c)

			case domain.GuardRedirectLogin:
				return c.JSON(http.StatusUnauthorized, GuardResponse{
					Decision: decision,
					Redirect: "/auth/login",
				})

			case domain.GuardRedirectHome:
				return c.JSON(http.StatusForbidden, GuardResponse{
					Decision: decision,
					Redirect: "/",
				})

			case domain.GuardUpgradePrompt:
				return c.JSON(http.StatusForbidden, GuardResponse{
					Decision: decision,
				})

			default:
				// a resolved session never yields loading; failing safe
				// here means denying, not admitting
				m.logger.Error("guard produced no terminal decision",
					"session_key", key,
					"decision", decision)
				return c.JSON(http.StatusServiceUnavailable, GuardResponse{
					Decision: domain.GuardLoading,
				})
			}
		}
	}
}

// Resolve returns the session for a key, running the bootstrap when it
// has not resolved yet. This is where the guard blocks.
func (m *GuardMiddleware) Resolve(c echo.Context, key string) (*domain.Session, error) {
	session := m.bootstrap.Snapshot(key)
	if session != nil && !session.Resolving() {
		return session, nil
	}

	cookieHeader := c.Request().Header.Get("Cookie")
	return m.bootstrap.Bootstrap(c.Request().Context(), key, cookieHeader)
}
