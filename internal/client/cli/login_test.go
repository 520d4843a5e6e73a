package cli

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoed/echoed-cli/internal/client/api"
	"github.com/echoed/echoed-cli/internal/client/auth"
	"github.com/echoed/echoed-cli/internal/client/expiry"
	"github.com/echoed/echoed-cli/internal/client/iocli"
	"github.com/echoed/echoed-cli/internal/client/session"
	pkgapi "github.com/echoed/echoed-cli/pkg/api"
)

// scriptedIO replays canned answers for prompts and collects output
func scriptedIO(inputs, passwords []string) (*iocli.IOMock, *[]string) {
	var output []string
	inputIdx, passwordIdx := 0, 0
	mock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			parts := make([]string, 0, len(a))
			for _, arg := range a {
				if s, ok := arg.(string); ok {
					parts = append(parts, s)
				}
			}
			output = append(output, strings.Join(parts, " "))
		},
		PrintfFunc: func(format string, a ...any) {
			output = append(output, format)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			answer := inputs[inputIdx]
			inputIdx++
			return answer, nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			answer := passwords[passwordIdx]
			passwordIdx++
			return answer, nil
		},
	}
	return mock, &output
}

func outputContains(output []string, substr string) bool {
	for _, line := range output {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func newTestCli(t *testing.T, mockIO *iocli.IOMock, mockAPI *auth.APIClientMock) (*Cli, *session.Store) {
	t.Helper()
	store := session.NewStore(context.Background(), session.NewMemScope(), session.NewMemScope(), nil)
	gateway := auth.NewGateway(mockAPI, store, nil, nil)
	notifier := expiry.NewNotifier(nil, nil, nil)
	return &Cli{
		io:       mockIO,
		gateway:  gateway,
		store:    store,
		notifier: notifier,
		logger:   slog.Default(),
	}, store
}

func TestCli_runLogin(t *testing.T) {
	ctx := context.Background()
	mockIO, output := scriptedIO([]string{"ada", "y"}, []string{"secret123"})
	mockAPI := &auth.APIClientMock{
		LoginFunc: func(ctx context.Context, req pkgapi.AuthRequest) (*pkgapi.AuthResponse, error) {
			assert.Equal(t, "ada", req.EmailOrUsername)
			assert.Equal(t, "secret123", req.Password)
			return &pkgapi.AuthResponse{
				Token:        "access-1",
				RefreshToken: "refresh-1",
				ID:           7,
				Username:     "ada",
				Email:        "ada@example.com",
			}, nil
		},
	}
	cli, store := newTestCli(t, mockIO, mockAPI)

	require.NoError(t, cli.runLogin(ctx))

	require.NotNil(t, store.Current())
	assert.Equal(t, "ada", store.Current().Username)
	assert.True(t, outputContains(*output, "Login successful"))
	assert.True(t, outputContains(*output, "session has been saved"))
}

func TestCli_runLoginBadCredentials(t *testing.T) {
	mockIO, _ := scriptedIO([]string{"ada", "n"}, []string{"wrong"})
	mockAPI := &auth.APIClientMock{
		LoginFunc: func(ctx context.Context, req pkgapi.AuthRequest) (*pkgapi.AuthResponse, error) {
			return nil, &api.StatusError{Code: 401, Message: "Invalid credentials"}
		},
	}
	cli, store := newTestCli(t, mockIO, mockAPI)

	err := cli.runLogin(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.Nil(t, store.Current())
}

func TestCli_runLoginDeactivatedAccount(t *testing.T) {
	mockIO, _ := scriptedIO([]string{"ada", "n"}, []string{"secret123"})
	mockAPI := &auth.APIClientMock{
		LoginFunc: func(ctx context.Context, req pkgapi.AuthRequest) (*pkgapi.AuthResponse, error) {
			return nil, &api.StatusError{Code: 423, Message: "Account is deactivated"}
		},
	}
	cli, _ := newTestCli(t, mockIO, mockAPI)

	err := cli.runLogin(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deactivated")
}

func TestCli_runRegister(t *testing.T) {
	ctx := context.Background()
	mockIO, output := scriptedIO(
		[]string{"ada", "ada@example.com", "n"},
		[]string{"secret123", "secret123"},
	)
	mockAPI := &auth.APIClientMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.SignupRequest) (*pkgapi.AuthResponse, error) {
			assert.Equal(t, "ada", req.Username)
			assert.Equal(t, "ada@example.com", req.Email)
			return &pkgapi.AuthResponse{
				Token:    "access-1",
				ID:       7,
				Username: "ada",
				Email:    "ada@example.com",
			}, nil
		},
	}
	cli, store := newTestCli(t, mockIO, mockAPI)

	require.NoError(t, cli.runRegister(ctx))
	require.NotNil(t, store.Current())
	assert.True(t, outputContains(*output, "Registration successful"))
	assert.Len(t, mockAPI.RegisterCalls(), 1)
}

func TestCli_runRegisterPasswordMismatch(t *testing.T) {
	mockIO, _ := scriptedIO(
		[]string{"ada", "ada@example.com"},
		[]string{"secret123", "different"},
	)
	cli, _ := newTestCli(t, mockIO, &auth.APIClientMock{})

	err := cli.runRegister(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not match")
}

func TestCli_runRegisterInvalidUsername(t *testing.T) {
	mockIO, _ := scriptedIO([]string{"a!"}, nil)
	cli, _ := newTestCli(t, mockIO, &auth.APIClientMock{})

	err := cli.runRegister(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid username")
}

func TestCli_runLogout(t *testing.T) {
	ctx := context.Background()
	mockIO, output := scriptedIO(nil, nil)
	mockAPI := &auth.APIClientMock{
		LoginFunc: func(ctx context.Context, req pkgapi.AuthRequest) (*pkgapi.AuthResponse, error) {
			return &pkgapi.AuthResponse{Token: "access-1", Username: "ada"}, nil
		},
	}
	cli, store := newTestCli(t, mockIO, mockAPI)

	_, err := cli.gateway.Login(ctx, pkgapi.AuthRequest{EmailOrUsername: "ada", Password: "x"}, false)
	require.NoError(t, err)

	require.NoError(t, cli.runLogout(ctx))
	assert.Nil(t, store.Current())
	assert.True(t, outputContains(*output, "Logged out"))
}

func TestCli_runLogoutNotLoggedIn(t *testing.T) {
	mockIO, output := scriptedIO(nil, nil)
	cli, _ := newTestCli(t, mockIO, &auth.APIClientMock{})

	require.NoError(t, cli.runLogout(context.Background()))
	assert.True(t, outputContains(*output, "Not logged in"))
}

func TestCli_runStatus(t *testing.T) {
	ctx := context.Background()
	mockIO, output := scriptedIO(nil, nil)
	cli, store := newTestCli(t, mockIO, &auth.APIClientMock{})

	require.NoError(t, cli.runStatus(ctx))
	assert.True(t, outputContains(*output, "Not logged in"))

	require.NoError(t, store.Save(ctx, &session.Identity{
		Username: "ada",
		Email:    "ada@example.com",
		Provider: session.ProviderLocal,
		Roles:    []string{"ROLE_USER"},
	}, "access-1", "refresh-1", false))

	*output = nil
	require.NoError(t, cli.runStatus(ctx))
	assert.True(t, outputContains(*output, "Logged in"))
}

func TestCli_reportExpired(t *testing.T) {
	mockIO, output := scriptedIO(nil, nil)
	cli, _ := newTestCli(t, mockIO, &auth.APIClientMock{})

	// nothing signaled, nothing printed
	cli.reportExpired()
	assert.False(t, outputContains(*output, "session has expired"))

	cli.notifier.Signal(context.Background())
	cli.reportExpired()
	assert.True(t, outputContains(*output, "session has expired"))
	// acknowledged, so a second report stays quiet
	assert.False(t, cli.notifier.Signaled())
}
