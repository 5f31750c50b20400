package cache

import (
	"context"
	"testing"
	"time"

	"tour-booking/pkg/utils"

	"github.com/alicebob/miniredis/v2"
)

func newTestRedis(t *testing.T) *Redis {
	t.Helper()

	srv := miniredis.RunT(t)
	c, err := NewRedis(utils.RedisConfig{Addr: srv.Addr(), StatsTTL: time.Minute})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestRedis_GetSet(t *testing.T) {
	ctx := context.Background()
	c := newTestRedis(t)

	miss, err := c.Get(ctx, "total-revenue")
	if err != nil || miss.Hit {
		t.Fatalf("expected a miss, got %+v (%v)", miss, err)
	}

	if err := c.Set(ctx, miss.Generation, "total-revenue", []byte(`{"overallCents":100}`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	hit, err := c.Get(ctx, "total-revenue")
	if err != nil || !hit.Hit || string(hit.Value) != `{"overallCents":100}` {
		t.Fatalf("expected the stored value, got %+v (%v)", hit, err)
	}
}

func TestRedis_Invalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("drops stored entries", func(t *testing.T) {
		c := newTestRedis(t)

		miss, _ := c.Get(ctx, "overview")
		if err := c.Set(ctx, miss.Generation, "overview", []byte(`{}`)); err != nil {
			t.Fatalf("set: %v", err)
		}
		if err := c.Invalidate(ctx); err != nil {
			t.Fatalf("invalidate: %v", err)
		}

		after, err := c.Get(ctx, "overview")
		if err != nil || after.Hit {
			t.Fatalf("expected a miss after invalidation, got %+v (%v)", after, err)
		}
	})

	t.Run("a value computed before a write is never served after it", func(t *testing.T) {
		c := newTestRedis(t)

		miss, err := c.Get(ctx, "total-revenue")
		if err != nil || miss.Hit {
			t.Fatalf("expected a miss, got %+v (%v)", miss, err)
		}

		// a booking is confirmed while the miss is being computed
		if err := c.Invalidate(ctx); err != nil {
			t.Fatalf("invalidate: %v", err)
		}

		if err := c.Set(ctx, miss.Generation, "total-revenue", []byte(`{"overallCents":0}`)); err != nil {
			t.Fatalf("set: %v", err)
		}

		after, err := c.Get(ctx, "total-revenue")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if after.Hit {
			t.Fatalf("stale value %s served after invalidation", after.Value)
		}
		if after.Generation != miss.Generation+1 {
			t.Fatalf("expected generation %d, got %d", miss.Generation+1, after.Generation)
		}
	})
}
