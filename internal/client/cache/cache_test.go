package cache

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_Searches(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.RecordSearch(ctx, "kid a"))
	require.NoError(t, c.RecordSearch(ctx, "in rainbows"))

	entries, err := c.RecentSearches(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// newest first
	assert.Equal(t, "in rainbows", entries[0].Query)
	assert.Equal(t, "kid a", entries[1].Query)
	assert.False(t, entries[0].SearchedAt.IsZero())
}

func TestCache_SearchesLimit(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	for i := range 5 {
		require.NoError(t, c.RecordSearch(ctx, fmt.Sprintf("query-%d", i)))
	}

	entries, err := c.RecentSearches(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, "query-4", entries[0].Query)
}

func TestCache_Views(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.RecordView(ctx, ViewSong, "s1", "Everything In Its Right Place"))
	require.NoError(t, c.RecordView(ctx, ViewAlbum, "a1", "Kid A"))

	entries, err := c.RecentViews(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, ViewAlbum, entries[0].Kind)
	assert.Equal(t, "a1", entries[0].SpotifyID)
	assert.Equal(t, ViewSong, entries[1].Kind)
}

func TestCache_Empty(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	searches, err := c.RecentSearches(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, searches)

	views, err := c.RecentViews(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestCache_Prune(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	for i := range 10 {
		require.NoError(t, c.RecordSearch(ctx, fmt.Sprintf("query-%d", i)))
		require.NoError(t, c.RecordView(ctx, ViewSong, fmt.Sprintf("s%d", i), "song"))
	}

	require.NoError(t, c.Prune(ctx, 4))

	searches, err := c.RecentSearches(ctx, 100)
	require.NoError(t, err)
	require.Len(t, searches, 4)
	// pruning keeps the newest rows
	assert.Equal(t, "query-9", searches[0].Query)
	assert.Equal(t, "query-6", searches[3].Query)

	views, err := c.RecentViews(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, views, 4)
}
