package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"context"

	"account-service/app/domain"
)

// AuthUsecase defines the user-triggered auth actions. Each wraps a
// single call into the identity provider with a timeout guard; failures
// are surfaced as domain.AuthError with one human-readable message.
type AuthUsecase interface {
	PasswordLogin(ctx context.Context, sessionKey, email, password string) (*domain.Identity, error)
	PasswordSignup(ctx context.Context, sessionKey, email, password string) (*domain.Identity, error)
	OAuthLogin(ctx context.Context, sessionKey, provider, returnTo string) (string, error)
	Logout(ctx context.Context, sessionKey, sessionToken string) error
}

// AuthGateway defines the anti-corruption layer over the identity
// provider. Implementations translate provider errors into the domain
// taxonomy (timeout, not-found, service-error).
type AuthGateway interface {
	// WhoAmI resolves a session token or cookie header to the current
	// Kratos session, or domain.ErrNoSession.
	WhoAmI(ctx context.Context, cookieHeader string) (*domain.KratosSession, error)
	PasswordLogin(ctx context.Context, email, password string) (*domain.KratosSession, error)
	PasswordSignup(ctx context.Context, email, password string) (*domain.KratosSession, error)
	// OAuthRedirectURL starts an OIDC login flow and returns the
	// provider redirect URL. The redirect is control flow, not an error.
	OAuthRedirectURL(ctx context.Context, provider, returnTo string) (string, error)
	RevokeSession(ctx context.Context, sessionToken string) error
}

// KratosClient defines the raw driver interface below the gateway
type KratosClient interface {
	ToSession(ctx context.Context, cookieHeader string) (*domain.KratosSession, error)
	SubmitPasswordLogin(ctx context.Context, email, password string) (*domain.KratosSession, error)
	SubmitPasswordRegistration(ctx context.Context, email, password string) (*domain.KratosSession, error)
	CreateOIDCLoginFlow(ctx context.Context, provider, returnTo string) (string, error)
	RevokeSession(ctx context.Context, sessionToken string) error
	HealthCheck(ctx context.Context) error
}
