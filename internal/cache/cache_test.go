// ABOUTME: Tests for the badger-backed response cache.
// ABOUTME: Covers set/get, explicit invalidation, reset, and TTL expiry.

package cache

import (
	"testing"
	"time"
)

func openTestCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	c, err := Open(t.TempDir(), ttl)
	if err != nil {
		t.Fatalf("failed to open cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestSetGet(t *testing.T) {
	c := openTestCache(t, 0)

	if err := c.Set("https://example.com/licenses.json", []byte(`{"licenses":[]}`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, ok := c.Get("https://example.com/licenses.json")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(val) != `{"licenses":[]}` {
		t.Errorf("unexpected value: %s", val)
	}
}

func TestGetMiss(t *testing.T) {
	c := openTestCache(t, 0)

	if _, ok := c.Get("https://example.com/missing.json"); ok {
		t.Error("expected cache miss")
	}
}

func TestInvalidate(t *testing.T) {
	c := openTestCache(t, 0)

	if err := c.Set("key", []byte("value")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := c.Invalidate("key"); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}
	if _, ok := c.Get("key"); ok {
		t.Error("expected key to be gone after invalidation")
	}

	// Invalidating an unknown key is not an error.
	if err := c.Invalidate("never-set"); err != nil {
		t.Errorf("invalidate of unknown key failed: %v", err)
	}
}

func TestReset(t *testing.T) {
	c := openTestCache(t, 0)

	for _, key := range []string{"a", "b", "c"} {
		if err := c.Set(key, []byte("v")); err != nil {
			t.Fatalf("set failed: %v", err)
		}
	}

	if err := c.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	count, err := c.Len()
	if err != nil {
		t.Fatalf("len failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty cache after reset, got %d entries", count)
	}
}

func TestLen(t *testing.T) {
	c := openTestCache(t, 0)

	for _, key := range []string{"a", "b"} {
		if err := c.Set(key, []byte("v")); err != nil {
			t.Fatalf("set failed: %v", err)
		}
	}

	count, err := c.Len()
	if err != nil {
		t.Fatalf("len failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 entries, got %d", count)
	}
}

func TestTTLExpiry(t *testing.T) {
	c := openTestCache(t, 50*time.Millisecond)

	if err := c.Set("key", []byte("value")); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	if _, ok := c.Get("key"); ok {
		t.Error("expected entry to expire")
	}
}
