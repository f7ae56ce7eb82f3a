package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"account-service/app/domain"
	"account-service/app/port"
)

// AuthUsecase implements the user-triggered auth actions. Each action
// wraps one identity-provider call in its own timeout and, on success,
// publishes an identity-change event. State updates happen in the
// bootstrap's event subscription, never here, so actions and session
// checks race through a single code path.
type AuthUsecase struct {
	gateway       port.AuthGateway
	events        port.AuthEventBus
	actionTimeout time.Duration
	logger        *slog.Logger
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(gateway port.AuthGateway, events port.AuthEventBus, actionTimeout time.Duration, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		gateway:       gateway,
		events:        events,
		actionTimeout: actionTimeout,
		logger:        logger.With("component", "auth_usecase"),
	}
}

// PasswordLogin authenticates email/password credentials against the
// identity provider and announces the signed-in identity.
func (u *AuthUsecase) PasswordLogin(ctx context.Context, sessionKey, email, password string) (*domain.Identity, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, u.actionTimeout)
	defer cancel()

	session, err := u.gateway.PasswordLogin(ctx, email, password)
	if err != nil {
		u.logger.Warn("password login failed", "email", email, "error", err)
		return nil, err
	}

	identity := session.Identity
	u.logger.Info("user logged in", "identity_id", identity.ID, "session_key", sessionKey)

	u.events.Publish(ctx, domain.AuthEvent{
		Kind:       domain.AuthEventSignedIn,
		Identity:   &identity,
		SessionKey: sessionKey,
		OccurredAt: time.Now(),
	})

	return &identity, nil
}

// PasswordSignup registers a new identity. The identity provider
// creates the identity; the default profile is created when the
// signed-in event is applied, same as for login.
func (u *AuthUsecase) PasswordSignup(ctx context.Context, sessionKey, email, password string) (*domain.Identity, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, u.actionTimeout)
	defer cancel()

	session, err := u.gateway.PasswordSignup(ctx, email, password)
	if err != nil {
		u.logger.Warn("password signup failed", "email", email, "error", err)
		return nil, err
	}

	identity := session.Identity
	u.logger.Info("user registered", "identity_id", identity.ID, "session_key", sessionKey)

	u.events.Publish(ctx, domain.AuthEvent{
		Kind:       domain.AuthEventSignedIn,
		Identity:   &identity,
		SessionKey: sessionKey,
		OccurredAt: time.Now(),
	})

	return &identity, nil
}

// OAuthLogin starts an OIDC login flow and returns the provider
// redirect URL. The redirect is the success path of this action, not a
// failure; the signed-in event fires later, when the provider calls
// back and the browser session becomes visible to the bootstrap.
func (u *AuthUsecase) OAuthLogin(ctx context.Context, sessionKey, provider, returnTo string) (string, error) {
	if provider == "" {
		return "", domain.NewValidationError("provider", provider, "oauth provider is required")
	}

	ctx, cancel := context.WithTimeout(ctx, u.actionTimeout)
	defer cancel()

	redirectURL, err := u.gateway.OAuthRedirectURL(ctx, provider, returnTo)
	if err != nil {
		u.logger.Warn("oauth flow start failed", "provider", provider, "error", err)
		return "", err
	}

	u.logger.Info("oauth flow started", "provider", provider, "session_key", sessionKey)
	return redirectURL, nil
}

// Logout revokes the provider session and announces the sign-out. A
// revocation failure still publishes the event: the local session must
// not stay authenticated because the provider was unreachable.
func (u *AuthUsecase) Logout(ctx context.Context, sessionKey, sessionToken string) error {
	ctx, cancel := context.WithTimeout(ctx, u.actionTimeout)
	defer cancel()

	var revokeErr error
	if sessionToken != "" {
		if revokeErr = u.gateway.RevokeSession(ctx, sessionToken); revokeErr != nil {
			u.logger.Warn("session revocation failed", "session_key", sessionKey, "error", revokeErr)
		}
	}

	u.events.Publish(ctx, domain.AuthEvent{
		Kind:       domain.AuthEventSignedOut,
		SessionKey: sessionKey,
		OccurredAt: time.Now(),
	})

	u.logger.Info("user logged out", "session_key", sessionKey)

	if revokeErr != nil {
		return fmt.Errorf("logout completed locally but revocation failed: %w", revokeErr)
	}
	return nil
}

func validateCredentials(email, password string) error {
	if email == "" {
		return domain.NewValidationError("email", email, "email is required")
	}
	if password == "" {
		return domain.NewValidationError("password", nil, "password is required")
	}
	return nil
}
