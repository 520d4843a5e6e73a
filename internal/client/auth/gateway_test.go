package auth

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoed/echoed-cli/internal/client/session"
	pkgapi "github.com/echoed/echoed-cli/pkg/api"
)

func newTestStore(t *testing.T) (*session.Store, session.Scope, session.Scope) {
	t.Helper()
	durable := session.NewMemScope()
	ephemeral := session.NewMemScope()
	return session.NewStore(context.Background(), durable, ephemeral, nil), durable, ephemeral
}

func authResponse() *pkgapi.AuthResponse {
	return &pkgapi.AuthResponse{
		Token:        "access-1",
		RefreshToken: "refresh-1",
		ID:           7,
		Username:     "ada",
		Email:        "ada@example.com",
		Roles:        []string{"ROLE_USER", "ROLE_MODERATOR"},
		Permissions:  []string{"READ", "WRITE"},
	}
}

func TestGateway_Login(t *testing.T) {
	ctx := context.Background()
	store, durable, ephemeral := newTestStore(t)
	mockAPI := &APIClientMock{
		LoginFunc: func(ctx context.Context, req pkgapi.AuthRequest) (*pkgapi.AuthResponse, error) {
			return authResponse(), nil
		},
	}
	gw := NewGateway(mockAPI, store, nil, nil)

	identity, err := gw.Login(ctx, pkgapi.AuthRequest{EmailOrUsername: "ada", Password: "secret"}, true)
	require.NoError(t, err)

	assert.Equal(t, int64(7), identity.UserID)
	assert.Equal(t, session.ProviderLocal, identity.Provider)
	assert.Equal(t, []string{"ROLE_USER", "ROLE_MODERATOR"}, identity.Roles)
	assert.True(t, identity.Active)
	assert.Equal(t, "access-1", store.GetToken(ctx))

	// remember=true lands in the durable scope only
	_, err = durable.Get(ctx, session.KeyAccessToken)
	assert.NoError(t, err)
	_, err = ephemeral.Get(ctx, session.KeyAccessToken)
	assert.ErrorIs(t, err, session.ErrKeyNotFound)

	require.Len(t, mockAPI.LoginCalls(), 1)
	assert.Equal(t, "ada", mockAPI.LoginCalls()[0].Req.EmailOrUsername)
}

func TestGateway_LoginEphemeral(t *testing.T) {
	ctx := context.Background()
	store, durable, _ := newTestStore(t)
	mockAPI := &APIClientMock{
		LoginFunc: func(ctx context.Context, req pkgapi.AuthRequest) (*pkgapi.AuthResponse, error) {
			return authResponse(), nil
		},
	}
	gw := NewGateway(mockAPI, store, nil, nil)

	_, err := gw.Login(ctx, pkgapi.AuthRequest{EmailOrUsername: "ada", Password: "secret"}, false)
	require.NoError(t, err)

	_, err = durable.Get(ctx, session.KeyAccessToken)
	assert.ErrorIs(t, err, session.ErrKeyNotFound)
	assert.Equal(t, "access-1", store.GetToken(ctx))
}

func TestGateway_LoginErrorLeavesNoSession(t *testing.T) {
	ctx := context.Background()
	store, _, _ := newTestStore(t)
	wantErr := errors.New("bad credentials")
	mockAPI := &APIClientMock{
		LoginFunc: func(ctx context.Context, req pkgapi.AuthRequest) (*pkgapi.AuthResponse, error) {
			return nil, wantErr
		},
	}
	gw := NewGateway(mockAPI, store, nil, nil)

	_, err := gw.Login(ctx, pkgapi.AuthRequest{EmailOrUsername: "ada", Password: "nope"}, true)
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, store.Current())
	assert.Empty(t, store.GetToken(ctx))
}

func TestGateway_RegisterDefaultsRolesAndPermissions(t *testing.T) {
	ctx := context.Background()
	store, _, _ := newTestStore(t)
	mockAPI := &APIClientMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.SignupRequest) (*pkgapi.AuthResponse, error) {
			resp := authResponse()
			resp.Roles = nil
			resp.Permissions = nil
			return resp, nil
		},
	}
	gw := NewGateway(mockAPI, store, nil, nil)

	identity, err := gw.Register(ctx, pkgapi.SignupRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "secret123",
	}, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"ROLE_USER"}, identity.Roles)
	assert.Equal(t, []string{"READ"}, identity.Permissions)
}

func oauthToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestGateway_ConsumeOAuthRedirect(t *testing.T) {
	ctx := context.Background()
	store, durable, _ := newTestStore(t)
	gw := NewGateway(&APIClientMock{}, store, nil, nil)

	token := oauthToken(t, jwt.MapClaims{
		"sub":         "ada",
		"email":       "ada@gmail.com",
		"id":          float64(7),
		"roles":       []any{"ROLE_USER"},
		"permissions": []any{"READ"},
	})

	identity, err := gw.ConsumeOAuthRedirect(ctx, token, "refresh-1")
	require.NoError(t, err)

	assert.Equal(t, "ada", identity.Username)
	assert.Equal(t, "ada@gmail.com", identity.Email)
	assert.Equal(t, int64(7), identity.UserID)
	assert.Equal(t, session.ProviderGoogle, identity.Provider)

	// federated sessions are always durable
	_, err = durable.Get(ctx, session.KeyAccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "refresh-1", store.RefreshToken(ctx))
}

func TestGateway_ConsumeOAuthRedirectDefaults(t *testing.T) {
	ctx := context.Background()
	store, _, _ := newTestStore(t)
	gw := NewGateway(&APIClientMock{}, store, nil, nil)

	identity, err := gw.ConsumeOAuthRedirect(ctx, oauthToken(t, jwt.MapClaims{"sub": "ada"}), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"ROLE_USER"}, identity.Roles)
	assert.Equal(t, []string{"READ"}, identity.Permissions)
}

func TestGateway_ConsumeOAuthRedirectBadToken(t *testing.T) {
	ctx := context.Background()
	store, _, _ := newTestStore(t)
	gw := NewGateway(&APIClientMock{}, store, nil, nil)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "not a jwt", token: "garbage"},
		{name: "missing subject", token: oauthToken(t, jwt.MapClaims{"email": "x@y.z"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := gw.ConsumeOAuthRedirect(ctx, tt.token, "refresh-1")
			assert.Error(t, err)
			assert.Nil(t, identity)
			assert.Nil(t, store.Current(), "no session may be established")
		})
	}
}

func TestParseOAuthRedirect(t *testing.T) {
	token, refresh, err := ParseOAuthRedirect(url.Values{
		"token":         {"access-1"},
		"refresh_token": {"refresh-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "access-1", token)
	assert.Equal(t, "refresh-1", refresh)

	_, _, err = ParseOAuthRedirect(url.Values{"refresh_token": {"refresh-1"}})
	assert.Error(t, err)
}

func TestGateway_Logout(t *testing.T) {
	ctx := context.Background()
	store, _, _ := newTestStore(t)
	var navigated bool
	mockAPI := &APIClientMock{
		LoginFunc: func(ctx context.Context, req pkgapi.AuthRequest) (*pkgapi.AuthResponse, error) {
			return authResponse(), nil
		},
	}
	gw := NewGateway(mockAPI, store, func() { navigated = true }, nil)

	_, err := gw.Login(ctx, pkgapi.AuthRequest{EmailOrUsername: "ada", Password: "secret"}, true)
	require.NoError(t, err)

	require.NoError(t, gw.Logout(ctx))
	assert.Nil(t, store.Current())
	assert.Empty(t, store.GetToken(ctx))
	assert.True(t, navigated)
}

func TestGateway_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	store, _, _ := newTestStore(t)
	newUsername := "ada_lovelace"
	newBio := "records, mostly"
	mockAPI := &APIClientMock{
		LoginFunc: func(ctx context.Context, req pkgapi.AuthRequest) (*pkgapi.AuthResponse, error) {
			return authResponse(), nil
		},
		UpdateProfileFunc: func(ctx context.Context, req pkgapi.UpdateProfileRequest) (*pkgapi.UserProfile, error) {
			return &pkgapi.UserProfile{
				UserID:    7,
				Username:  newUsername,
				Biography: newBio,
			}, nil
		},
	}
	gw := NewGateway(mockAPI, store, nil, nil)

	_, err := gw.Login(ctx, pkgapi.AuthRequest{EmailOrUsername: "ada", Password: "secret"}, true)
	require.NoError(t, err)

	updated, err := gw.UpdateProfile(ctx, pkgapi.UpdateProfileRequest{Username: &newUsername, Biography: &newBio})
	require.NoError(t, err)

	assert.Equal(t, newUsername, updated.Username)
	assert.Equal(t, newBio, updated.Biography)
	// untouched fields survive
	assert.Equal(t, "ada@example.com", updated.Email)
	assert.Equal(t, updated, store.Current())
	// tokens untouched by a profile edit
	assert.Equal(t, "access-1", store.GetToken(ctx))
}

func TestGateway_UpdateProfileWithoutSession(t *testing.T) {
	store, _, _ := newTestStore(t)
	gw := NewGateway(&APIClientMock{}, store, nil, nil)

	identity, err := gw.UpdateProfile(context.Background(), pkgapi.UpdateProfileRequest{})
	assert.NoError(t, err)
	assert.Nil(t, identity)
}

func TestGateway_ChangePassword(t *testing.T) {
	store, _, _ := newTestStore(t)
	wantErr := errors.New("current password is incorrect")
	mockAPI := &APIClientMock{
		ChangePasswordFunc: func(ctx context.Context, req pkgapi.ChangePasswordRequest) error {
			return wantErr
		},
	}
	gw := NewGateway(mockAPI, store, nil, nil)

	err := gw.ChangePassword(context.Background(), pkgapi.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})
	assert.ErrorIs(t, err, wantErr)
}
