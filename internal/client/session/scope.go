package session

import (
	"context"
	"errors"
	"sync"
)

// Storage keys shared by both scopes. The same three keys always live
// together: tokens are never persisted or cleared without each other.
const (
	KeyIdentity     = "current-user"
	KeyAccessToken  = "auth-token"
	KeyRefreshToken = "auth-refresh-token"
)

// ErrKeyNotFound indicates that a scope holds no value for a key
var ErrKeyNotFound = errors.New("session key not found")

// Scope is one storage lifetime for session state. The durable scope
// survives process restarts; the ephemeral scope ends with the process.
type Scope interface {
	// Get returns the stored value, or ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores the value under key
	Set(ctx context.Context, key, value string) error

	// Delete removes the key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
}

// MemScope is the ephemeral scope: a process-local map
type MemScope struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemScope creates an empty ephemeral scope
func NewMemScope() *MemScope {
	return &MemScope{values: make(map[string]string)}
}

func (m *MemScope) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m *MemScope) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemScope) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
