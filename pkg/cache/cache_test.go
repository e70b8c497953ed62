package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Miss before set
	_, hit, err := c.Get(ctx, "chart:abc")
	if err != nil || hit {
		t.Fatalf("expected clean miss, got hit=%v err=%v", hit, err)
	}

	// Round trip
	if err := c.Set(ctx, "chart:abc", []byte("payload"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "chart:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit || string(data) != "payload" {
		t.Errorf("Get = %q hit=%v, want payload", data, hit)
	}

	// Delete then miss
	if err := c.Delete(ctx, "chart:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "chart:abc"); hit {
		t.Error("expected miss after delete")
	}

	// Deleting a missing key is fine
	if err := c.Delete(ctx, "never-stored"); err != nil {
		t.Errorf("Delete missing: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "short-lived", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "short-lived"); hit {
		t.Error("expired entry should be a miss")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	type opts struct {
		JD   float64
		Mode string
	}

	ck1 := k.ChartKey(opts{JD: 2451545, Mode: "rasi"})
	ck2 := k.ChartKey(opts{JD: 2451545, Mode: "degree"})
	if ck1 == ck2 {
		t.Error("Different options should produce different chart keys")
	}
	if !strings.HasPrefix(ck1, "chart:") {
		t.Errorf("ChartKey prefix unexpected: %s", ck1)
	}

	pk1 := k.PositionsKey(2451545, "lahiri")
	pk2 := k.PositionsKey(2451545, "raman")
	if pk1 == pk2 {
		t.Error("Different systems should produce different position keys")
	}

	ak1 := k.AspectKey("hash123", "rasi")
	ak2 := k.AspectKey("hash123", "degree")
	if ak1 == ak2 {
		t.Error("Different modes should produce different aspect keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "tenant:123:")

	key := scoped.PositionsKey(2451545, "lahiri")
	if !strings.HasPrefix(key, "tenant:123:positions:") {
		t.Errorf("scoped key unexpected: %s", key)
	}
	if !strings.HasSuffix(key, inner.PositionsKey(2451545, "lahiri")) {
		t.Error("scoped key should wrap the inner key")
	}

	// Nil inner falls back to the default keyer
	fallback := NewScopedKeyer(nil, "p:")
	if !strings.HasPrefix(fallback.ChartKey("x"), "p:chart:") {
		t.Error("nil inner should use the default keyer")
	}
}
