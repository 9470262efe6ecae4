package redis

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "summary:acc-1", []byte(`{"balance":"750"}`), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "summary:acc-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if !bytes.Equal(val, []byte(`{"balance":"750"}`)) {
		t.Fatalf("unexpected value: %s", val)
	}
}

func TestCacheDelete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "summary:acc-1", []byte("x"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if err := cache.Delete(ctx, "summary:acc-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := cache.Get(ctx, "summary:acc-1"); err == nil {
		t.Fatalf("expected error getting deleted key")
	}
}
