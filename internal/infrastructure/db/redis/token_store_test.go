package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T, prefix string, ttl time.Duration) (*TokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTokenStore(client, prefix, ttl), mr
}

func TestTokenStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, "farmdesk", 0)

	tok, err := store.Load(ctx, "access_token")
	if err != nil || tok != "" {
		t.Fatalf("empty slot should load as \"\", got %q %v", tok, err)
	}

	if err := store.Save(ctx, "access_token", "abc"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got, _ := mr.Get("farmdesk:access_token"); got != "abc" {
		t.Fatalf("expected prefixed key to hold token, got %q", got)
	}
	if ttl := mr.TTL("farmdesk:access_token"); ttl != 0 {
		t.Fatalf("expected no expiry, got %v", ttl)
	}

	if tok, _ := store.Load(ctx, "access_token"); tok != "abc" {
		t.Fatalf("unexpected token %q", tok)
	}

	if err := store.Delete(ctx, "access_token"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if mr.Exists("farmdesk:access_token") {
		t.Fatalf("key should be gone after delete")
	}
	if err := store.Delete(ctx, "access_token"); err != nil {
		t.Fatalf("deleting a missing key should succeed: %v", err)
	}
}

func TestTokenStore_TTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, "", time.Minute)

	if err := store.Save(ctx, "slot", "abc"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if ttl := mr.TTL("slot"); ttl != time.Minute {
		t.Fatalf("expected 1m ttl, got %v", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if tok, _ := store.Load(ctx, "slot"); tok != "" {
		t.Fatalf("expired token should read as empty, got %q", tok)
	}
}

func TestTokenStore_ServerDown(t *testing.T) {
	store, mr := newTestStore(t, "p", 0)
	mr.Close()

	if _, err := store.Load(context.Background(), "slot"); err == nil {
		t.Fatalf("expected error with server down")
	}
}
