package cache

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNewRedis_RejectsBadURL(t *testing.T) {
	if _, err := NewRedis("not-a-redis-url", zerolog.Nop()); err == nil {
		t.Fatalf("expected an error for a malformed URL")
	}
}

func TestRedis_UnreachableBackendDegradesToMiss(t *testing.T) {
	// Port 1 is never a Redis server; every operation must fail internally
	// and degrade without surfacing an error to the caller.
	c, err := NewRedis("redis://127.0.0.1:1", zerolog.Nop())
	if err != nil {
		t.Fatalf("URL is well-formed, construction must succeed: %v", err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c.Set(ctx, "user:1", "value", time.Minute)
	if _, ok := c.Get(ctx, "user:1"); ok {
		t.Fatalf("expected miss against an unreachable backend")
	}
	c.Delete(ctx, "user:1")

	if pingErr := c.Ping(ctx); pingErr == nil {
		t.Fatalf("expected Ping to report the unreachable backend")
	}
}
