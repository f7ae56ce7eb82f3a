package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"account-service/app/domain"
	"account-service/app/port"
)

// AuthGateway implements port.AuthGateway
// It acts as an anti-corruption layer between the domain and the
// identity provider driver.
type AuthGateway struct {
	kratosClient port.KratosClient
	logger       *slog.Logger
}

// NewAuthGateway creates a new AuthGateway instance
func NewAuthGateway(kratosClient port.KratosClient, logger *slog.Logger) *AuthGateway {
	return &AuthGateway{
		kratosClient: kratosClient,
		logger:       logger.With("component", "auth_gateway"),
	}
}

var _ port.AuthGateway = (*AuthGateway)(nil)

// WhoAmI resolves a cookie header to the current session
func (g *AuthGateway) WhoAmI(ctx context.Context, cookieHeader string) (*domain.KratosSession, error) {
	if cookieHeader == "" {
		return nil, domain.ErrNoSession
	}

	session, err := g.kratosClient.ToSession(ctx, cookieHeader)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return nil, domain.ErrNoSession
		}
		g.logger.Error("whoami failed", "error", err)
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	if !session.IsValid() {
		return nil, domain.ErrSessionExpired
	}

	return session, nil
}

// PasswordLogin submits a password login flow
func (g *AuthGateway) PasswordLogin(ctx context.Context, email, password string) (*domain.KratosSession, error) {
	g.logger.Info("password login", "email", email)

	session, err := g.kratosClient.SubmitPasswordLogin(ctx, email, password)
	if err != nil {
		g.logger.Error("password login failed", "email", email, "error", err)
		return nil, err
	}

	g.logger.Info("password login succeeded", "identity_id", session.Identity.ID)
	return session, nil
}

// PasswordSignup submits a password registration flow
func (g *AuthGateway) PasswordSignup(ctx context.Context, email, password string) (*domain.KratosSession, error) {
	g.logger.Info("password signup", "email", email)

	session, err := g.kratosClient.SubmitPasswordRegistration(ctx, email, password)
	if err != nil {
		g.logger.Error("password signup failed", "email", email, "error", err)
		return nil, err
	}

	g.logger.Info("password signup succeeded", "identity_id", session.Identity.ID)
	return session, nil
}

// OAuthRedirectURL starts an OIDC flow and returns the redirect URL
func (g *AuthGateway) OAuthRedirectURL(ctx context.Context, provider, returnTo string) (string, error) {
	if provider == "" {
		return "", domain.NewValidationError("provider", provider, "OAuth provider is required")
	}

	redirect, err := g.kratosClient.CreateOIDCLoginFlow(ctx, provider, returnTo)
	if err != nil {
		g.logger.Error("oauth flow failed", "provider", provider, "error", err)
		return "", err
	}

	return redirect, nil
}

// RevokeSession logs the session out of the identity provider
func (g *AuthGateway) RevokeSession(ctx context.Context, sessionToken string) error {
	if err := g.kratosClient.RevokeSession(ctx, sessionToken); err != nil {
		g.logger.Error("session revocation failed", "error", err)
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
