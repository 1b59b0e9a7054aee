package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"graphql-bff-api/internal/cache"
	"graphql-bff-api/internal/models"
	"graphql-bff-api/internal/store"

	"github.com/rs/zerolog"
)

// Resolver answers GraphQL queries from the cache first and the user store
// second, populating the cache on the way back. A cached entry is served
// as-is until its TTL runs out: staleness against the source of truth is an
// accepted tradeoff, there is no invalidation on upstream change.
type Resolver struct {
	cache cache.Cache
	store store.UserStore
	log   zerolog.Logger
	ttl   time.Duration
}

// NewResolver wires the resolver with its cache strategy and backing store.
func NewResolver(c cache.Cache, s store.UserStore, log zerolog.Logger, ttl time.Duration) *Resolver {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &Resolver{
		cache: c,
		store: s,
		log:   log,
		ttl:   ttl,
	}
}

func userKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

// GetUser returns the user with the given id, or nil when it does not exist.
// Absent users are never cached, so repeat lookups for unknown ids always
// reach the store.
func (r *Resolver) GetUser(ctx context.Context, id string) (*models.User, error) {
	key := userKey(id)

	if raw, ok := r.cache.Get(ctx, key); ok {
		var u models.User
		if err := json.Unmarshal([]byte(raw), &u); err == nil {
			r.log.Debug().Str("key", key).Msg("cache hit")
			return &u, nil
		}
		// Undecodable entry: drop it and fall through to the store.
		r.log.Warn().Str("key", key).Msg("evicting undecodable cache entry")
		r.cache.Delete(ctx, key)
	}

	u, err := r.store.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch user %s: %w", id, err)
	}
	if u == nil {
		return nil, nil
	}

	// Population is fire-and-forget relative to the response: a failed or
	// skipped write only costs the next request a store lookup.
	if raw, marshalErr := json.Marshal(u); marshalErr == nil {
		r.cache.Set(ctx, key, string(raw), r.ttl)
	} else {
		r.log.Warn().Err(marshalErr).Str("key", key).Msg("skipping cache population")
	}

	return u, nil
}
