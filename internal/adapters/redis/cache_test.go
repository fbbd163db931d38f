package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "github.com/A-J-Jovia/Hotel-Booking-Backend/internal/adapters/redis"
)

type payload struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var out payload
	ok, err := c.Get(ctx, "hotel:1", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected miss on empty cache")
	}

	in := payload{Name: "Seaside", Price: 120}
	if err := c.Set(ctx, "hotel:1", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	ok, err = c.Get(ctx, "hotel:1", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || out != in {
		t.Fatalf("expected hit with %+v, got ok=%v %+v", in, ok, out)
	}

	if err := c.Del(ctx, "hotel:1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "hotel:1", &out); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "k", payload{Name: "x"}, 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Second)

	var out payload
	if ok, _ := c.Get(ctx, "k", &out); ok {
		t.Fatal("expected entry to expire")
	}
}
