package cache

import (
	"context"
	"time"
)

// Null is the disabled-mode strategy: every Get misses, Set and Delete are
// accepted and discarded, and no backing-store connection is ever attempted.
type Null struct{}

// NewNull returns the no-op cache strategy.
func NewNull() Null {
	return Null{}
}

func (Null) Get(ctx context.Context, key string) (string, bool) {
	return "", false
}

func (Null) Set(ctx context.Context, key, value string, ttl time.Duration) {}

func (Null) Delete(ctx context.Context, key string) {}

var _ Cache = Null{}
