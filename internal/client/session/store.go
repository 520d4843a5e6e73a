package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
)

// Store is the single source of truth for "who is logged in". It owns
// the in-memory Identity, persists sessions to exactly one of two
// storage scopes, and notifies subscribers on every change.
//
// A storage read that fails or yields malformed data degrades to
// "no session"; the Store never propagates such errors to readers.
type Store struct {
	mu        sync.RWMutex
	durable   Scope
	ephemeral Scope
	identity  *Identity
	subs      []func(*Identity)
	logger    *slog.Logger
}

// NewStore builds a Store over the two scopes and reconstructs the
// in-memory identity: durable scope first, then ephemeral, else anonymous.
func NewStore(ctx context.Context, durable, ephemeral Scope, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		durable:   durable,
		ephemeral: ephemeral,
		logger:    logger,
	}
	s.identity = s.loadIdentity(ctx)
	return s
}

// Current returns the live in-memory identity, nil when anonymous
func (s *Store) Current() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Subscribe registers a callback invoked on every identity change.
// The callback receives the new identity (nil on logout).
func (s *Store) Subscribe(fn func(*Identity)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// GetToken returns the access token from whichever scope holds a
// session, durable checked first. Empty string means anonymous.
func (s *Store) GetToken(ctx context.Context) string {
	return s.readKey(ctx, KeyAccessToken)
}

// RefreshToken returns the stored refresh token, durable scope first
func (s *Store) RefreshToken(ctx context.Context) string {
	return s.readKey(ctx, KeyRefreshToken)
}

// Save establishes a new session: both scopes are cleared first, then
// identity and token pair are written to the chosen scope. The
// clear-then-write order is what prevents a stale session in the other
// scope from being read after a durability switch.
func (s *Store) Save(ctx context.Context, identity *Identity, accessToken, refreshToken string, durable bool) error {
	if identity == nil {
		return errors.New("identity is nil")
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.clearScopesLocked(ctx); err != nil {
		return err
	}

	scope := s.ephemeral
	if durable {
		scope = s.durable
	}
	if err := scope.Set(ctx, KeyIdentity, string(data)); err != nil {
		return err
	}
	if err := scope.Set(ctx, KeyAccessToken, accessToken); err != nil {
		return err
	}
	if err := scope.Set(ctx, KeyRefreshToken, refreshToken); err != nil {
		return err
	}

	s.identity = identity
	s.notifyLocked(identity)
	return nil
}

// SetTokens replaces the token pair in the scope that owns the current
// session, leaving the identity untouched. An empty refreshToken keeps
// the stored one, so access and refresh tokens always live together.
func (s *Store) SetTokens(ctx context.Context, accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scope := s.owningScope(ctx)
	if scope == nil {
		return errors.New("no active session")
	}
	if refreshToken == "" {
		stored, err := scope.Get(ctx, KeyRefreshToken)
		if err != nil {
			return errors.New("no stored refresh token")
		}
		refreshToken = stored
	}
	if err := scope.Set(ctx, KeyAccessToken, accessToken); err != nil {
		return err
	}
	return scope.Set(ctx, KeyRefreshToken, refreshToken)
}

// ReplaceIdentity swaps the stored identity in the owning scope without
// touching the token pair. Without an active session this is a warning,
// not an error.
func (s *Store) ReplaceIdentity(ctx context.Context, identity *Identity) error {
	if identity == nil {
		return errors.New("identity is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	scope := s.owningScope(ctx)
	if scope == nil {
		s.logger.Warn("identity update ignored, no active session")
		return nil
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	if err := scope.Set(ctx, KeyIdentity, string(data)); err != nil {
		return err
	}

	s.identity = identity
	s.notifyLocked(identity)
	return nil
}

// Clear removes the three session keys from both scopes and resets the
// in-memory identity. Unrelated keys a scope may hold survive.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.clearScopesLocked(ctx)
	s.identity = nil
	s.notifyLocked(nil)
	return err
}

func (s *Store) clearScopesLocked(ctx context.Context) error {
	var errs []error
	for _, scope := range []Scope{s.durable, s.ephemeral} {
		for _, key := range []string{KeyIdentity, KeyAccessToken, KeyRefreshToken} {
			if err := scope.Delete(ctx, key); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// notifyLocked runs subscriber callbacks. The store lock is held, so
// callbacks observe the state they were notified about; they must not
// call back into the Store.
func (s *Store) notifyLocked(identity *Identity) {
	for _, fn := range s.subs {
		fn(identity)
	}
}

// readKey checks the durable scope first, then the ephemeral one
func (s *Store) readKey(ctx context.Context, key string) string {
	for _, scope := range []Scope{s.durable, s.ephemeral} {
		value, err := scope.Get(ctx, key)
		if err == nil {
			return value
		}
		if !errors.Is(err, ErrKeyNotFound) {
			s.logger.Warn("session storage read failed", "key", key, "error", err)
		}
	}
	return ""
}

// owningScope returns the scope currently holding session tokens.
// Callers hold s.mu.
func (s *Store) owningScope(ctx context.Context) Scope {
	for _, scope := range []Scope{s.durable, s.ephemeral} {
		if _, err := scope.Get(ctx, KeyAccessToken); err == nil {
			return scope
		}
	}
	return nil
}

// loadIdentity reconstructs the identity at startup. Malformed or
// unreadable data means anonymous, never an error.
func (s *Store) loadIdentity(ctx context.Context) *Identity {
	raw := s.readKey(ctx, KeyIdentity)
	if raw == "" {
		return nil
	}
	var identity Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		s.logger.Warn("stored identity is malformed, treating as logged out", "error", err)
		return nil
	}
	return &identity
}
