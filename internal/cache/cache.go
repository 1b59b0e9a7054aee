package cache

import (
	"context"
	"time"
)

// DefaultTTL is applied whenever a caller passes a non-positive TTL.
// Entries without an explicit lifetime would otherwise persist until
// evicted, which is never what a BFF cache wants.
const DefaultTTL = time.Hour

// Cache is the uniform contract over an optional backing store. Values are
// serialized text; callers marshal before Set and unmarshal after Get.
//
// Implementations never surface backing-store I/O errors: a failed read is a
// miss and a failed write is a discarded no-op, so the cache can never break
// the primary request path. The strategy is chosen once at startup — Null
// when caching is disabled, Redis when a backing store is configured,
// Memory for development and tests.
type Cache interface {
	// Get returns the stored value and whether a valid entry was present.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores the value under key for ttl. Re-setting a key overwrites
	// the prior value and restarts its lifetime.
	Set(ctx context.Context, key, value string, ttl time.Duration)

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string)
}
