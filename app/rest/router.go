package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"account-service/app/domain"
	"account-service/app/port"
	"account-service/app/rest/handlers"
	custommw "account-service/app/rest/middleware"
	"account-service/app/utils/security"
	"account-service/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger           *slog.Logger
	AuthUsecase      port.AuthUsecase
	BootstrapUsecase port.BootstrapUsecase
	ProfileUsecase   port.ProfileUsecase
	ProfileGateway   port.ProfileGateway
	TierTable        *domain.TierTable
	HealthChecks     map[string]handlers.DependencyCheck
	EnableDebug      bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = config.EnableDebug
	e.Validator = validator.New()

	// Handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Logger)
	sessionHandler := handlers.NewSessionHandler(config.BootstrapUsecase, config.Logger)
	profileHandler := handlers.NewProfileHandler(config.ProfileUsecase, config.ProfileGateway, config.Logger)
	guardHandler := handlers.NewGuardHandler(config.BootstrapUsecase, config.TierTable, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.HealthChecks, config.Logger)

	// Middleware
	guard := custommw.NewGuardMiddleware(config.BootstrapUsecase, config.TierTable, config.Logger)
	rateLimiter := custommw.NewRateLimiter()
	ids := security.NewIDS(config.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.IntrusionDetection(ids, config.Logger))
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Auth actions
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/oauth", authHandler.OAuth)
	auth.POST("/logout", authHandler.Logout)

	// Session bootstrap
	session := v1.Group("/session")
	session.GET("", sessionHandler.Get)
	session.GET("/snapshot", sessionHandler.Snapshot)
	session.POST("/reset", sessionHandler.Reset)

	// Route guard decision, for client-side navigation
	v1.GET("/guard/decision", guardHandler.Decision)

	// Profile endpoints sit behind the guard
	profile := v1.Group("/profile")
	profile.Use(guard.RequireSession())
	profile.GET("", profileHandler.Get)
	profile.PATCH("", profileHandler.Rename)
	profile.POST("/photospheres", profileHandler.RecordPhotosphere)
	profile.POST("/photos", profileHandler.RecordPhoto)

	// HD exports count against the photo quota and additionally require
	// the feature flag
	exports := v1.Group("/exports")
	exports.Use(guard.RequireFeature(domain.FeatureHDExport))
	exports.POST("/hd", profileHandler.RecordPhoto)

	// Legacy data migration, not exposed to browsers
	internal := v1.Group("/internal")
	internal.POST("/profiles/import", profileHandler.Import)

	return e
}
