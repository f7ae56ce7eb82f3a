package kratos

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"account-service/app/domain"
	"account-service/app/port"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"
)

// KratosClientAdapter adapts the kratos.Client to implement port.KratosClient
type KratosClientAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewKratosClientAdapter creates a new adapter
func NewKratosClientAdapter(client *Client, logger *slog.Logger) port.KratosClient {
	return &KratosClientAdapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// ToSession resolves a session cookie header to the current Kratos session
func (a *KratosClientAdapter) ToSession(ctx context.Context, cookieHeader string) (*domain.KratosSession, error) {
	a.logger.Debug("resolving session via whoami")

	resp, httpResp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		Cookie(cookieHeader).
		Execute()
	if err != nil {
		return nil, a.transformKratosError(err, httpResp, "whoami")
	}

	return a.transformSession(resp)
}

// SubmitPasswordLogin runs a native login flow with the password method
func (a *KratosClientAdapter) SubmitPasswordLogin(ctx context.Context, email, password string) (*domain.KratosSession, error) {
	a.logger.Info("submitting password login", "email", email)

	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeLoginFlow(ctx).
		Execute()
	if err != nil {
		return nil, a.transformKratosError(err, httpResp, "login_flow_create")
	}

	method := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Method:     "password",
		Identifier: email,
		Password:   password,
	}

	result, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&method)).
		Execute()
	if err != nil {
		return nil, a.transformKratosError(err, httpResp, "login_flow_submit")
	}

	a.logger.Info("password login succeeded", "flow_id", flow.Id)
	return a.transformSession(&result.Session)
}

// SubmitPasswordRegistration runs a native registration flow with the
// password method
func (a *KratosClientAdapter) SubmitPasswordRegistration(ctx context.Context, email, password string) (*domain.KratosSession, error) {
	a.logger.Info("submitting password registration", "email", email)

	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeRegistrationFlow(ctx).
		Execute()
	if err != nil {
		return nil, a.transformKratosError(err, httpResp, "registration_flow_create")
	}

	method := kratosclient.UpdateRegistrationFlowWithPasswordMethod{
		Method:   "password",
		Password: password,
		Traits: map[string]interface{}{
			"email": email,
		},
	}

	result, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateRegistrationFlow(ctx).
		Flow(flow.Id).
		UpdateRegistrationFlowBody(kratosclient.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(&method)).
		Execute()
	if err != nil {
		return nil, a.transformKratosError(err, httpResp, "registration_flow_submit")
	}

	if result.Session == nil {
		return nil, domain.NewAuthError(domain.ErrCodeInternal, "registration did not produce a session", nil)
	}

	a.logger.Info("password registration succeeded", "flow_id", flow.Id)
	return a.transformSession(result.Session)
}

// CreateOIDCLoginFlow starts a browser login flow for an OIDC provider
// and returns the provider redirect URL. Kratos reports the redirect as
// a browser-location-change error; that is control flow here, not a
// failure.
func (a *KratosClientAdapter) CreateOIDCLoginFlow(ctx context.Context, provider, returnTo string) (string, error) {
	a.logger.Info("creating OIDC login flow", "provider", provider, "return_to", returnTo)

	req := a.client.PublicAPI().FrontendAPI.CreateBrowserLoginFlow(ctx)
	if returnTo != "" {
		req = req.ReturnTo(returnTo)
	}

	flow, httpResp, err := req.Execute()
	if err != nil {
		return "", a.transformKratosError(err, httpResp, "oidc_flow_create")
	}

	method := kratosclient.UpdateLoginFlowWithOidcMethod{
		Method:   "oidc",
		Provider: provider,
	}

	_, httpResp, err = a.client.PublicAPI().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithOidcMethodAsUpdateLoginFlowBody(&method)).
		Execute()
	if err != nil {
		if redirect := extractRedirectURL(err); redirect != "" {
			a.logger.Info("OIDC redirect resolved", "provider", provider)
			return redirect, nil
		}
		return "", a.transformKratosError(err, httpResp, "oidc_flow_submit")
	}

	return "", domain.NewAuthError(domain.ErrCodeInternal,
		fmt.Sprintf("OIDC provider %s did not issue a redirect", provider), nil)
}

// RevokeSession logs the session out
func (a *KratosClientAdapter) RevokeSession(ctx context.Context, sessionToken string) error {
	a.logger.Info("revoking session")

	body := kratosclient.PerformNativeLogoutBody{SessionToken: sessionToken}
	httpResp, err := a.client.PublicAPI().FrontendAPI.
		PerformNativeLogout(ctx).
		PerformNativeLogoutBody(body).
		Execute()
	if err != nil {
		return a.transformKratosError(err, httpResp, "logout")
	}

	return nil
}

// HealthCheck delegates to the underlying client
func (a *KratosClientAdapter) HealthCheck(ctx context.Context) error {
	return a.client.HealthCheck(ctx)
}

// transformSession maps a Kratos session to the domain representation
func (a *KratosClientAdapter) transformSession(session *kratosclient.Session) (*domain.KratosSession, error) {
	if session == nil || session.Identity == nil {
		return nil, domain.ErrNoSession
	}

	identityID, err := uuid.Parse(session.Identity.Id)
	if err != nil {
		return nil, fmt.Errorf("invalid identity ID from Kratos: %w", err)
	}

	email := extractEmailTrait(session.Identity.Traits)
	if email == "" {
		a.logger.Warn("identity has no email trait", "identity_id", session.Identity.Id)
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	if session.ExpiresAt != nil {
		expiresAt = *session.ExpiresAt
	}

	active := session.Active != nil && *session.Active

	return &domain.KratosSession{
		ID:        session.Id,
		Active:    active,
		ExpiresAt: expiresAt,
		Identity: domain.Identity{
			ID:    identityID,
			Email: email,
		},
	}, nil
}

// extractEmailTrait pulls the email out of the identity traits schema
func extractEmailTrait(traits interface{}) string {
	traitMap, ok := traits.(map[string]interface{})
	if !ok {
		return ""
	}
	email, _ := traitMap["email"].(string)
	return email
}

// extractRedirectURL parses a browser-location-change error body for
// the redirect_browser_to field.
func extractRedirectURL(err error) string {
	kratosErr, ok := err.(*kratosclient.GenericOpenAPIError)
	if !ok {
		return ""
	}

	var body struct {
		RedirectBrowserTo string `json:"redirect_browser_to"`
		Error             struct {
			ID string `json:"id"`
		} `json:"error"`
	}
	if jsonErr := json.Unmarshal(kratosErr.Body(), &body); jsonErr != nil {
		return ""
	}

	return body.RedirectBrowserTo
}
