package graph

import (
	"context"
	"testing"
	"time"

	"graphql-bff-api/internal/cache"
	"graphql-bff-api/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestResolver() (*Resolver, *cache.Memory, *store.Memory) {
	c := cache.NewMemory()
	s := store.NewMemory()
	return NewResolver(c, s, zerolog.Nop(), time.Minute), c, s
}

func TestResolver_GetUser_PopulatesCacheThenSkipsStore(t *testing.T) {
	r, c, s := newTestResolver()
	ctx := context.Background()

	first, err := r.GetUser(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, first)
	require.Equal(t, "John Doe", first.Name)
	require.EqualValues(t, 1, s.Lookups())
	require.Equal(t, 1, c.Len())

	second, err := r.GetUser(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, first, second)
	// The second call is served from the cache, no further dataset scan.
	require.EqualValues(t, 1, s.Lookups())
}

func TestResolver_GetUser_AbsentNeverCached(t *testing.T) {
	r, c, s := newTestResolver()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		u, err := r.GetUser(ctx, "999")
		require.NoError(t, err)
		require.Nil(t, u)
	}
	require.EqualValues(t, 3, s.Lookups())
	require.Equal(t, 0, c.Len())
}

func TestResolver_GetUser_UndecodableEntryFallsBackToStore(t *testing.T) {
	r, c, s := newTestResolver()
	ctx := context.Background()

	c.Set(ctx, "user:1", "{corrupted", time.Minute)

	u, err := r.GetUser(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "John Doe", u.Name)
	require.EqualValues(t, 1, s.Lookups())

	// The bad entry was replaced by a decodable one.
	raw, ok := c.Get(ctx, "user:1")
	require.True(t, ok)
	require.Contains(t, raw, "john@example.com")
}

func TestResolver_GetUser_DisabledCacheAlwaysHitsStore(t *testing.T) {
	s := store.NewMemory()
	r := NewResolver(cache.NewNull(), s, zerolog.Nop(), time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		u, err := r.GetUser(ctx, "2")
		require.NoError(t, err)
		require.NotNil(t, u)
		require.Equal(t, "Jane Smith", u.Name)
	}
	require.EqualValues(t, 2, s.Lookups())
}
