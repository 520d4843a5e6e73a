// Package transport makes authentication transparent to the rest of the
// client: it attaches bearer tokens to outgoing requests and recovers
// from access-token expiry with a single-flight refresh.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/echoed/echoed-cli/pkg/api"
)

// DefaultExemptPaths are the endpoints whose own 401 must never start a
// refresh: credential errors there belong to the caller, and a 401 from
// the refresh endpoint itself is terminal.
var DefaultExemptPaths = []string{
	"/auth",
	"/auth/register",
	"/auth/refresh",
	"/users/me/password",
}

const refreshPath = "/auth/refresh"

// ErrNoRefreshToken is returned when a 401 arrives but no refresh token
// is stored, so recovery is impossible.
var ErrNoRefreshToken = errors.New("no refresh token available")

// TokenSource provides and updates the session's token pair.
// *session.Store satisfies it.
type TokenSource interface {
	GetToken(ctx context.Context) string
	RefreshToken(ctx context.Context) string
	SetTokens(ctx context.Context, accessToken, refreshToken string) error
}

// Refresher performs the refresh call. It must NOT send its requests
// through an Authorizer, or a failing refresh would recurse.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*api.AuthResponse, error)
}

// ExpirySink receives the terminal session-expired signal
type ExpirySink interface {
	Signal(ctx context.Context)
}

// refreshCall is one expiry episode: a single outstanding refresh that
// concurrent 401 handlers wait on.
type refreshCall struct {
	done  chan struct{}
	once  sync.Once
	token string
	err   error
}

// finish settles the episode exactly once; late settlers lose
func (c *refreshCall) finish(token string, err error) {
	c.once.Do(func() {
		c.token = token
		c.err = err
		close(c.done)
	})
}

// Authorizer is an http.RoundTripper that injects the bearer token and
// runs the refresh protocol on 401 responses. At most one refresh call
// is outstanding at any time; every waiter either replays with the new
// token or fails with the refresh error, never hangs.
type Authorizer struct {
	base      http.RoundTripper
	tokens    TokenSource
	refresher Refresher
	expired   ExpirySink
	exempt    []string
	logger    *slog.Logger

	mu       sync.Mutex
	inflight *refreshCall
}

// NewAuthorizer builds an Authorizer over base (http.DefaultTransport
// when nil) with the default exempt endpoint set.
func NewAuthorizer(base http.RoundTripper, tokens TokenSource, refresher Refresher, expired ExpirySink, logger *slog.Logger) *Authorizer {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Authorizer{
		base:      base,
		tokens:    tokens,
		refresher: refresher,
		expired:   expired,
		exempt:    DefaultExemptPaths,
		logger:    logger,
	}
}

// RoundTrip implements http.RoundTripper
func (a *Authorizer) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	token := a.tokens.GetToken(ctx)
	authReq := req
	if token != "" {
		authReq = withBearer(req, token)
	}

	resp, err := a.base.RoundTrip(authReq)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	path := req.URL.Path
	if a.isExempt(path) {
		if isRefreshEndpoint(path) {
			// The refresh token itself was rejected: terminal.
			a.resetInflight()
			a.expired.Signal(ctx)
		}
		return resp, nil
	}

	// A request with a consumed, non-rewindable body cannot be replayed.
	if req.Body != nil && req.GetBody == nil {
		a.logger.Warn("401 on non-replayable request, passing through", "path", path)
		return resp, nil
	}

	drain(resp)

	newToken, err := a.awaitRefresh(ctx)
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}

	replay, err := rewind(req)
	if err != nil {
		return nil, err
	}
	return a.base.RoundTrip(withBearer(replay, newToken))
}

// awaitRefresh is the single-flight gate. The first caller of an expiry
// episode performs the refresh; everyone else waits on its outcome.
func (a *Authorizer) awaitRefresh(ctx context.Context) (string, error) {
	a.mu.Lock()
	if call := a.inflight; call != nil {
		a.mu.Unlock()
		select {
		case <-call.done:
			return call.token, call.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	call := &refreshCall{done: make(chan struct{})}
	a.inflight = call
	a.mu.Unlock()

	token, err := a.doRefresh(ctx)

	a.mu.Lock()
	if a.inflight == call {
		a.inflight = nil
	}
	a.mu.Unlock()
	call.finish(token, err)

	if call.err != nil {
		// Terminal: drop the local session and surface one notice.
		a.expired.Signal(ctx)
	}
	return call.token, call.err
}

func (a *Authorizer) doRefresh(ctx context.Context) (string, error) {
	refreshToken := a.tokens.RefreshToken(ctx)
	if refreshToken == "" {
		return "", ErrNoRefreshToken
	}

	resp, err := a.refresher.Refresh(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if err := a.tokens.SetTokens(ctx, resp.Token, resp.RefreshToken); err != nil {
		return "", fmt.Errorf("failed to store refreshed tokens: %w", err)
	}

	a.logger.Debug("access token refreshed")
	return resp.Token, nil
}

// resetInflight drops any in-flight episode. Used when the refresh
// endpoint itself answers 401 through this transport.
func (a *Authorizer) resetInflight() {
	a.mu.Lock()
	call := a.inflight
	a.inflight = nil
	a.mu.Unlock()
	if call != nil {
		call.finish("", errors.New("refresh token rejected"))
	}
}

func (a *Authorizer) isExempt(path string) bool {
	for _, e := range a.exempt {
		if matchesPath(path, e) {
			return true
		}
	}
	return false
}

func isRefreshEndpoint(path string) bool {
	return matchesPath(path, refreshPath)
}

// matchesPath compares on segment boundaries so a mounted prefix like
// /api/v1 still matches the exempt suffix.
func matchesPath(path, exempt string) bool {
	path = strings.TrimSuffix(path, "/")
	return path == exempt || strings.HasSuffix(path, exempt)
}

// withBearer clones the request with the Authorization header set
func withBearer(req *http.Request, token string) *http.Request {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	return clone
}

// rewind produces a fresh request for replay, restoring the body from
// GetBody when the original had one.
func rewind(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("failed to rewind request body: %w", err)
		}
		clone.Body = body
	}
	return clone, nil
}

// drain discards a response we are replacing so the connection can be
// reused.
func drain(resp *http.Response) {
	if resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
	_ = resp.Body.Close()
}
