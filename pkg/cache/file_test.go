package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestFileCacheSetGet(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() = %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	want := []byte(`{"region_count":5}`)

	if err := c.Set(ctx, "metrics:abc", want, TTLMetrics); err != nil {
		t.Fatalf("Set() = %v", err)
	}

	got, hit, err := c.Get(ctx, "metrics:abc")
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if !hit {
		t.Fatal("Get() = miss, want hit")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get() = %q, want %q", got, want)
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() = %v", err)
	}
	defer c.Close()

	_, hit, err := c.Get(context.Background(), "metrics:unknown")
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if hit {
		t.Error("Get() on empty cache = hit, want miss")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() = %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "metrics:expiring", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	_, hit, err := c.Get(ctx, "metrics:expiring")
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if hit {
		t.Error("Get() after TTL = hit, want miss")
	}
}

func TestFileCacheZeroTTLNeverExpires(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() = %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "metrics:forever", []byte("x"), 0); err != nil {
		t.Fatalf("Set() = %v", err)
	}

	_, hit, err := c.Get(ctx, "metrics:forever")
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if !hit {
		t.Error("Get() with zero TTL = miss, want hit")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() = %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "metrics:gone", []byte("x"), TTLMetrics); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	if err := c.Delete(ctx, "metrics:gone"); err != nil {
		t.Fatalf("Delete() = %v", err)
	}

	if _, hit, _ := c.Get(ctx, "metrics:gone"); hit {
		t.Error("Get() after Delete() = hit, want miss")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "metrics:never"); err != nil {
		t.Errorf("Delete() on missing key = %v, want nil", err)
	}
}

func TestNullCacheAlwaysMisses(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), TTLMetrics); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	_, hit, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if hit {
		t.Error("NullCache Get() = hit, want miss")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	h := Hash([]byte("config"))

	if a, b := k.MetricsKey(h), k.MetricsKey(h); a != b {
		t.Errorf("MetricsKey() not deterministic: %q vs %q", a, b)
	}
	if k.MetricsKey(h) == k.ArtifactKey(h, "svg") {
		t.Error("metrics and artifact keys collide")
	}
	if k.ArtifactKey(h, "svg") == k.ArtifactKey(h, "json") {
		t.Error("artifact keys for different formats collide")
	}
	if k.MetricsKey(h) == k.MetricsKey(Hash([]byte("other"))) {
		t.Error("different config hashes produce the same key")
	}
}
