// Package auth is the gateway into a session: credential login,
// registration and OAuth callback all normalize into one Identity shape
// before being handed to the session store.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/echoed/echoed-cli/internal/client/session"
	pkgapi "github.com/echoed/echoed-cli/pkg/api"
)

//go:generate moq -out api_mock.go . APIClient

// APIClient is the slice of the REST client the gateway needs
type APIClient interface {
	Login(ctx context.Context, req pkgapi.AuthRequest) (*pkgapi.AuthResponse, error)
	Register(ctx context.Context, req pkgapi.SignupRequest) (*pkgapi.AuthResponse, error)
	UpdateProfile(ctx context.Context, req pkgapi.UpdateProfileRequest) (*pkgapi.UserProfile, error)
	ChangePassword(ctx context.Context, req pkgapi.ChangePasswordRequest) error
}

// Gateway performs the entry and exit paths of a session
type Gateway struct {
	api      APIClient
	store    *session.Store
	navigate func()
	logger   *slog.Logger
}

// NewGateway creates a Gateway. navigate is invoked after logout to
// send the user back to the login entry point; nil is allowed.
func NewGateway(apiClient APIClient, store *session.Store, navigate func(), logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		api:      apiClient,
		store:    store,
		navigate: navigate,
		logger:   logger,
	}
}

// Login authenticates with credentials and persists the session with
// the requested durability. Server errors (bad credentials, locked
// account) pass through to the caller unchanged.
func (g *Gateway) Login(ctx context.Context, req pkgapi.AuthRequest, remember bool) (*session.Identity, error) {
	resp, err := g.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return g.establish(ctx, resp, session.ProviderLocal, remember)
}

// Register creates an account and establishes the session, with the
// same normalization and error contract as Login.
func (g *Gateway) Register(ctx context.Context, req pkgapi.SignupRequest, remember bool) (*session.Identity, error) {
	resp, err := g.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return g.establish(ctx, resp, session.ProviderLocal, remember)
}

// ConsumeOAuthRedirect builds a session from the token pair delivered
// by the OAuth redirect. The access token's claims are decoded locally,
// no network call. On decode failure the session is simply not
// established; the caller redirects to login.
func (g *Gateway) ConsumeOAuthRedirect(ctx context.Context, token, refreshToken string) (*session.Identity, error) {
	if token == "" {
		return nil, errors.New("oauth redirect is missing the access token")
	}

	identity, err := identityFromToken(token)
	if err != nil {
		g.logger.Error("failed to decode token from oauth callback", "error", err)
		return nil, err
	}

	// Federated sessions are always durable
	if err := g.store.Save(ctx, identity, token, refreshToken, true); err != nil {
		return nil, err
	}
	return identity, nil
}

// ParseOAuthRedirect extracts the token pair from a redirect's query
// parameters. A missing token is the error path.
func ParseOAuthRedirect(query url.Values) (token, refreshToken string, err error) {
	token = query.Get("token")
	if token == "" {
		return "", "", errors.New("oauth redirect is missing the access token")
	}
	return token, query.Get("refresh_token"), nil
}

// Logout clears the session from both scopes and navigates back to the
// login entry point.
func (g *Gateway) Logout(ctx context.Context) error {
	err := g.store.Clear(ctx)
	g.NavigateToLogin()
	return err
}

// NavigateToLogin runs the navigation hook, if any. The session-expiry
// notifier calls this on acknowledge, after the session was already
// cleared.
func (g *Gateway) NavigateToLogin() {
	if g.navigate != nil {
		g.navigate()
	}
}

// UpdateProfile pushes profile edits to the server and replaces the
// stored identity, tokens untouched. Without a session it is a warning
// and a no-op, not an error.
func (g *Gateway) UpdateProfile(ctx context.Context, req pkgapi.UpdateProfileRequest) (*session.Identity, error) {
	current := g.store.Current()
	if current == nil {
		g.logger.Warn("profile update ignored, not logged in")
		return nil, nil
	}

	profile, err := g.api.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	updated.Username = profile.Username
	updated.ProfilePictureURL = profile.ProfilePictureURL
	updated.Biography = profile.Biography

	if err := g.store.ReplaceIdentity(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// ChangePassword forwards the password change; its endpoint is exempt
// from the refresh protocol, so its errors reach the caller untouched.
func (g *Gateway) ChangePassword(ctx context.Context, req pkgapi.ChangePasswordRequest) error {
	return g.api.ChangePassword(ctx, req)
}

// establish normalizes an auth response into an Identity and saves it
func (g *Gateway) establish(ctx context.Context, resp *pkgapi.AuthResponse, provider session.Provider, remember bool) (*session.Identity, error) {
	identity := &session.Identity{
		UserID:      resp.ID,
		Username:    resp.Username,
		Email:       resp.Email,
		Provider:    provider,
		Roles:       resp.Roles,
		Permissions: resp.Permissions,
		Active:      true,
	}
	if len(identity.Roles) == 0 {
		identity.Roles = []string{"ROLE_USER"}
	}
	if len(identity.Permissions) == 0 {
		identity.Permissions = []string{"READ"}
	}

	if err := g.store.Save(ctx, identity, resp.Token, resp.RefreshToken, remember); err != nil {
		return nil, err
	}
	return identity, nil
}
