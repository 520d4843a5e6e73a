package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoltScope(t *testing.T) *BoltScope {
	t.Helper()
	scope, err := NewBoltScope(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = scope.Close() })
	return scope
}

func TestBoltScope_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	scope := newTestBoltScope(t)

	_, err := scope.Get(ctx, KeyAccessToken)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, scope.Set(ctx, KeyAccessToken, "token-1"))
	got, err := scope.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "token-1", got)

	require.NoError(t, scope.Set(ctx, KeyAccessToken, "token-2"))
	got, err = scope.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "token-2", got)

	require.NoError(t, scope.Delete(ctx, KeyAccessToken))
	_, err = scope.Get(ctx, KeyAccessToken)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestBoltScope_DeleteMissingKey(t *testing.T) {
	scope := newTestBoltScope(t)
	assert.NoError(t, scope.Delete(context.Background(), "never-set"))
}

func TestBoltScope_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "session.db")

	scope, err := NewBoltScope(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, scope.Set(ctx, KeyIdentity, `{"username":"ada"}`))
	require.NoError(t, scope.Close())

	reopened, err := NewBoltScope(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, KeyIdentity)
	require.NoError(t, err)
	assert.Equal(t, `{"username":"ada"}`, got)
}
