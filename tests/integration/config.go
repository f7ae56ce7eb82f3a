package integration

import (
	"context"
	"fmt"
	"time"

	"account-service/app/config"
	"account-service/app/driver/postgres"
	"account-service/app/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// Test environment configuration, matching docker-compose.test.yml
	TestPostgresHost     = "localhost"
	TestPostgresPort     = "5433"
	TestPostgresDB       = "account_test_db"
	TestPostgresUser     = "account_test_user"
	TestPostgresPassword = "test_password"
	TestPostgresSSLMode  = "disable"

	TestKratosPublicURL = "http://localhost:4433"
	TestKratosAdminURL  = "http://localhost:4434"
)

// TestConfig creates a configuration for integration tests
func TestConfig() *config.Config {
	return &config.Config{
		Port:     "9600",
		Host:     "0.0.0.0",
		LogLevel: "debug",

		DatabaseURL: fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			TestPostgresUser, TestPostgresPassword, TestPostgresHost,
			TestPostgresPort, TestPostgresDB, TestPostgresSSLMode),
		DatabaseHost:     TestPostgresHost,
		DatabasePort:     TestPostgresPort,
		DatabaseName:     TestPostgresDB,
		DatabaseUser:     TestPostgresUser,
		DatabasePassword: TestPostgresPassword,
		DatabaseSSLMode:  TestPostgresSSLMode,

		KratosPublicURL: TestKratosPublicURL,
		KratosAdminURL:  TestKratosAdminURL,

		IdentityCheckTimeout: 5 * time.Second,
		BootstrapRetryDelay:  time.Second,
		ActionTimeout:        5 * time.Second,
		ProfileRetryAttempts: 2,
		ProfileRetryDelay:    100 * time.Millisecond,
	}
}

// TestDatabaseConnection creates a database connection for integration tests
func TestDatabaseConnection() (*pgxpool.Pool, error) {
	cfg := TestConfig()

	testLogger, err := logger.New("debug")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := postgres.NewConnection(cfg, testLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	return db.Pool(), nil
}

// WaitForDatabase blocks until the test database accepts connections
func WaitForDatabase(ctx context.Context) error {
	deadline := time.Now().Add(30 * time.Second)

	for time.Now().Before(deadline) {
		pool, err := TestDatabaseConnection()
		if err == nil {
			pingErr := pool.Ping(ctx)
			pool.Close()
			if pingErr == nil {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}

	return fmt.Errorf("test database not ready after 30s")
}
