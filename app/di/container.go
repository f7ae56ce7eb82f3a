package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"account-service/app/config"
	"account-service/app/domain"
	"account-service/app/driver/eventbus"
	"account-service/app/driver/kratos"
	"account-service/app/driver/memstore"
	"account-service/app/driver/postgres"
	"account-service/app/gateway"
	"account-service/app/port"
	"account-service/app/rest"
	"account-service/app/rest/handlers"
	"account-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client
	SessionStore port.SessionStore
	EventBus     port.AuthEventBus

	// Domain
	TierTable *domain.TierTable

	// Gateways
	AuthGateway    port.AuthGateway
	ProfileGateway port.ProfileGateway

	// Usecases
	AuthUsecase      port.AuthUsecase
	ProfileUsecase   port.ProfileUsecase
	BootstrapUsecase port.BootstrapUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	container.SessionStore = memstore.NewSessionStore(logger)
	container.EventBus = eventbus.New(logger)

	container.TierTable, err = loadTierTable(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Repositories
	profileRepository := postgres.NewProfileRepository(container.DB.Pool(), logger)

	// Gateways
	kratosAdapter := kratos.NewKratosClientAdapter(container.KratosClient, logger)
	container.AuthGateway = gateway.NewAuthGateway(kratosAdapter, logger)
	container.ProfileGateway = gateway.NewProfileGateway(profileRepository, logger)

	// Usecases
	container.ProfileUsecase = usecase.NewProfileUsecase(
		container.ProfileGateway,
		container.TierTable,
		cfg.ProfileRetryAttempts,
		cfg.ProfileRetryDelay,
		logger,
	)
	container.AuthUsecase = usecase.NewAuthUsecase(
		container.AuthGateway,
		container.EventBus,
		cfg.ActionTimeout,
		logger,
	)
	container.BootstrapUsecase = usecase.NewBootstrapUsecase(
		container.AuthGateway,
		container.ProfileUsecase,
		container.SessionStore,
		container.EventBus,
		cfg.IdentityCheckTimeout,
		cfg.BootstrapRetryDelay,
		logger,
	)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

func loadTierTable(cfg *config.Config, logger *slog.Logger) (*domain.TierTable, error) {
	if cfg.TierTablePath == "" {
		return domain.DefaultTierTable(), nil
	}

	table, err := domain.LoadTierTable(cfg.TierTablePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load tier table override: %w", err)
	}

	logger.Info("loaded tier table override", "path", cfg.TierTablePath)
	return table, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:           c.Logger,
		AuthUsecase:      c.AuthUsecase,
		BootstrapUsecase: c.BootstrapUsecase,
		ProfileUsecase:   c.ProfileUsecase,
		ProfileGateway:   c.ProfileGateway,
		TierTable:        c.TierTable,
		HealthChecks: map[string]handlers.DependencyCheck{
			"database": c.DB.HealthCheck,
			"kratos":   c.KratosClient.HealthCheck,
		},
		EnableDebug: c.Config.LogLevel == "debug",
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.BootstrapUsecase != nil {
		if err := c.BootstrapUsecase.Close(); err != nil {
			c.Logger.Warn("failed to close bootstrap", "error", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
