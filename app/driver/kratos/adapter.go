package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"studio/app/domain"
	"studio/app/port"
)

// Adapter implements port.AuthGateway on top of the Kratos native
// (API-client) self-service flows.
type Adapter struct {
	client *Client
	logger *slog.Logger
}

// NewAdapter creates a new adapter
func NewAdapter(client *Client, logger *slog.Logger) port.AuthGateway {
	return &Adapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// SignUp creates and submits a native registration flow. When the provider
// requires email confirmation it returns no session; the identity is still
// returned so the caller can poll for one.
func (a *Adapter) SignUp(ctx context.Context, email, password string, traits domain.IdentityTraits) (*domain.Session, *domain.Identity, error) {
	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.CreateNativeRegistrationFlow(ctx).Execute()
	if err != nil {
		a.logger.Error("failed to create registration flow",
			"error", err,
			"http_status", statusOf(httpResp))
		return nil, nil, fmt.Errorf("failed to create registration flow: %w", err)
	}

	body := kratosclient.UpdateRegistrationFlowWithPasswordMethod{
		Method:   "password",
		Password: password,
		Traits: map[string]interface{}{
			"email":      email,
			"full_name":  traits.FullName,
			"phone":      traits.Phone,
			"avatar_url": traits.AvatarURL,
		},
	}

	result, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateRegistrationFlow(ctx).
		Flow(flow.Id).
		UpdateRegistrationFlowBody(kratosclient.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(&body)).
		Execute()
	if err != nil {
		a.logger.Error("registration flow submission failed",
			"flow_id", flow.Id,
			"error", err,
			"http_status", statusOf(httpResp))
		return nil, nil, fmt.Errorf("registration failed: %w", err)
	}

	identity, err := transformIdentity(&result.Identity)
	if err != nil {
		return nil, nil, err
	}

	// No session: email confirmation is pending
	if result.Session == nil || result.SessionToken == nil {
		a.logger.Info("registration accepted, no session issued",
			"identity_id", identity.ID)
		return nil, identity, nil
	}

	session := transformSession(result.Session, *result.SessionToken, identity)
	a.logger.Info("registration completed with session",
		"identity_id", identity.ID)
	return session, identity, nil
}

// SignIn creates and submits a native login flow.
func (a *Adapter) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		a.logger.Error("failed to create login flow",
			"error", err,
			"http_status", statusOf(httpResp))
		return nil, fmt.Errorf("failed to create login flow: %w", err)
	}

	body := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Method:     "password",
		Identifier: email,
		Password:   password,
	}

	result, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&body)).
		Execute()
	if err != nil {
		a.logger.Warn("login flow submission failed",
			"flow_id", flow.Id,
			"http_status", statusOf(httpResp))
		if statusOf(httpResp) == http.StatusBadRequest || statusOf(httpResp) == http.StatusUnauthorized {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}

	identity, err := transformIdentity(result.Session.Identity)
	if err != nil {
		return nil, err
	}

	token := ""
	if result.SessionToken != nil {
		token = *result.SessionToken
	}

	return transformSession(&result.Session, token, identity), nil
}

// SignOut revokes the session behind the token.
func (a *Adapter) SignOut(ctx context.Context, token string) error {
	httpResp, err := a.client.PublicAPI().FrontendAPI.
		PerformNativeLogout(ctx).
		PerformNativeLogoutBody(kratosclient.PerformNativeLogoutBody{SessionToken: token}).
		Execute()
	if err != nil {
		a.logger.Error("logout failed",
			"error", err,
			"http_status", statusOf(httpResp))
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

// GetSession resolves a session token via whoami.
func (a *Adapter) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	kratosSession, httpResp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(token).
		Execute()
	if err != nil {
		if statusOf(httpResp) == http.StatusUnauthorized {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("session lookup failed: %w", err)
	}

	if kratosSession.Active != nil && !*kratosSession.Active {
		return nil, domain.ErrSessionExpired
	}

	identity, err := transformIdentity(kratosSession.Identity)
	if err != nil {
		return nil, err
	}

	return transformSession(kratosSession, token, identity), nil
}

// SessionForIdentity returns the newest active session of an identity via
// the admin API, or domain.ErrSessionNotFound.
func (a *Adapter) SessionForIdentity(ctx context.Context, identityID uuid.UUID) (*domain.Session, error) {
	sessions, httpResp, err := a.client.AdminAPI().IdentityAPI.
		ListIdentitySessions(ctx, identityID.String()).
		Active(true).
		Execute()
	if err != nil {
		a.logger.Error("failed to list identity sessions",
			"identity_id", identityID,
			"error", err,
			"http_status", statusOf(httpResp))
		return nil, fmt.Errorf("failed to list identity sessions: %w", err)
	}

	if len(sessions) == 0 {
		return nil, domain.ErrSessionNotFound
	}

	newest := sessions[0]
	identity, err := transformIdentity(newest.Identity)
	if err != nil {
		return nil, err
	}

	// Admin listing exposes no token; the caller only needs to know a
	// session now exists for the identity.
	return transformSession(&newest, "", identity), nil
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
