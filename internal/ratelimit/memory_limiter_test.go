package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiter_AllowsUpToLimit(t *testing.T) {
	l := NewMemoryLimiter(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "client-1")
		if err != nil {
			t.Fatalf("Allow #%d: %v", i+1, err)
		}
		if !ok {
			t.Fatalf("request #%d should be allowed", i+1)
		}
	}

	ok, err := l.Allow(ctx, "client-1")
	if err != nil {
		t.Fatalf("Allow over limit: %v", err)
	}
	if ok {
		t.Error("request over the limit should be rejected")
	}
}

func TestMemoryLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(1, time.Minute)
	ctx := context.Background()

	if ok, _ := l.Allow(ctx, "client-1"); !ok {
		t.Fatal("first request of client-1 should pass")
	}
	if ok, _ := l.Allow(ctx, "client-1"); ok {
		t.Fatal("second request of client-1 should be rejected")
	}
	if ok, _ := l.Allow(ctx, "client-2"); !ok {
		t.Error("client-2 has its own window and should pass")
	}
}

func TestMemoryLimiter_WindowResets(t *testing.T) {
	now := time.Now()
	l := NewMemoryLimiter(1, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	if ok, _ := l.Allow(ctx, "client-1"); !ok {
		t.Fatal("first request should pass")
	}
	if ok, _ := l.Allow(ctx, "client-1"); ok {
		t.Fatal("second request in the same window should be rejected")
	}

	now = now.Add(time.Minute + time.Second)
	if ok, _ := l.Allow(ctx, "client-1"); !ok {
		t.Error("request after the window elapsed should re-anchor and pass")
	}
}

func TestMemoryLimiter_EvictsExpiredClients(t *testing.T) {
	now := time.Now()
	l := NewMemoryLimiter(5, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, _ = l.Allow(ctx, string(rune('a'+i)))
	}
	if len(l.clients) != 10 {
		t.Fatalf("expected 10 tracked clients, got %d", len(l.clients))
	}

	now = now.Add(2 * time.Minute)
	_, _ = l.Allow(ctx, "fresh")
	if len(l.clients) != 1 {
		t.Errorf("expired clients should be evicted, got %d tracked", len(l.clients))
	}
}
