package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Redis backs the cache contract with a Redis server. The client connects
// lazily on first use; Ping exists so startup can fail fast when the store
// is unreachable. All I/O errors are logged and degrade to miss/no-op.
type Redis struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewRedis builds the Redis-backed strategy from a redis:// URL. Only the
// URL is validated here; no connection is made until the first operation.
func NewRedis(url string, log zerolog.Logger) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &Redis{
		client: redis.NewClient(opts),
		log:    log,
	}, nil
}

// Ping verifies the backing store is reachable.
func (c *Redis) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get implements Cache.Get. Absent keys and transport failures both report
// a miss; only the latter is logged.
func (c *Redis) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Error().Err(err).Str("key", key).Msg("cache get failed, degrading to miss")
		}
		return "", false
	}
	return val, true
}

// Set implements Cache.Set.
func (c *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.Error().Err(err).Str("key", key).Msg("cache set failed, entry discarded")
	}
}

// Delete implements Cache.Delete.
func (c *Redis) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Error().Err(err).Str("key", key).Msg("cache delete failed")
	}
}

// Close releases the underlying client.
func (c *Redis) Close() error {
	return c.client.Close()
}

var _ Cache = (*Redis)(nil)
