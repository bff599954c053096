package cache

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/strata/pkg/observability"
	"github.com/matzehuels/strata/pkg/strata"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	// Get always returns miss
	table, hit := c.Get(ctx, "key")
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if table != nil {
		t.Error("NullCache.Get should return nil table")
	}

	// Set does nothing
	c.Set(ctx, "key", strata.DefaultTable())

	// Still a miss after Set
	if _, hit = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	c.Purge()
}

func TestARCCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewARCCache(2)
	if err != nil {
		t.Fatalf("NewARCCache error: %v", err)
	}

	if _, hit := c.Get(ctx, "a"); hit {
		t.Error("empty cache should miss")
	}

	want := strata.DefaultTable()
	c.Set(ctx, "a", want)
	got, hit := c.Get(ctx, "a")
	if !hit || got != want {
		t.Errorf("Get(a) = %p, %v; want %p, true", got, hit, want)
	}

	c.Set(ctx, "b", strata.SyntheticTable(4))
	c.Set(ctx, "c", strata.SyntheticTable(8))
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (size bound)", c.Len())
	}

	c.Set(ctx, "nil", nil)
	if _, hit := c.Get(ctx, "nil"); hit {
		t.Error("nil tables should not be stored")
	}

	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len() after Purge = %d, want 0", c.Len())
	}
}

func TestNewARCCacheDefaultSize(t *testing.T) {
	c, err := NewARCCache(0)
	if err != nil {
		t.Fatalf("NewARCCache(0) error: %v", err)
	}
	ctx := context.Background()
	for i := range DefaultSize {
		c.Set(ctx, TableKey(map[strata.Token]float64{"x": float64(i)}, 0), strata.DefaultTable())
	}
	if c.Len() != DefaultSize {
		t.Errorf("Len() = %d, want %d", c.Len(), DefaultSize)
	}
}

type countingHooks struct {
	observability.NoopCacheHooks
	hits, misses, sets int
}

func (h *countingHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *countingHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestARCCacheReportsToHooks(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	c, _ := NewARCCache(4)
	c.Get(ctx, "k")
	c.Set(ctx, "k", strata.DefaultTable())
	c.Get(ctx, "k")
	c.Get(ctx, "k")

	if hooks.misses != 1 || hooks.sets != 1 || hooks.hits != 2 {
		t.Errorf("hooks = %d hits, %d misses, %d sets; want 2, 1, 1", hooks.hits, hooks.misses, hooks.sets)
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

func TestTableKey(t *testing.T) {
	base := map[strata.Token]float64{"H": 1.36, "W": 1, "A": 0.87, "O": 0.8}

	k1 := TableKey(base, 0)
	if !strings.HasPrefix(k1, KeyTypeTable+":") {
		t.Errorf("TableKey() = %q, want %q prefix", k1, KeyTypeTable+":")
	}

	// Same content built in a different order hashes the same.
	reordered := map[strata.Token]float64{}
	for _, tok := range []strata.Token{"O", "A", "W", "H"} {
		reordered[tok] = base[tok]
	}
	if TableKey(reordered, 0) != k1 {
		t.Error("TableKey should not depend on insertion order")
	}

	if TableKey(base, 1) == k1 {
		t.Error("different fallback should change the key")
	}

	changed := map[strata.Token]float64{"H": 1.37, "W": 1, "A": 0.87, "O": 0.8}
	if TableKey(changed, 0) == k1 {
		t.Error("different weight should change the key")
	}

	nan := TableKey(map[strata.Token]float64{"x": math.NaN()}, 0)
	inf := TableKey(map[strata.Token]float64{"x": math.Inf(1)}, 0)
	if nan == inf {
		t.Error("NaN and +Inf tables should not share a key")
	}
}

func TestARCCacheConcurrentUse(t *testing.T) {
	c, _ := NewARCCache(8)
	ctx := context.Background()
	done := make(chan struct{})
	for i := range 4 {
		go func() {
			defer func() { done <- struct{}{} }()
			key := TableKey(map[strata.Token]float64{"x": float64(i)}, 0)
			for range 100 {
				c.Set(ctx, key, strata.DefaultTable())
				c.Get(ctx, key)
			}
		}()
	}
	timeout := time.After(5 * time.Second)
	for range 4 {
		select {
		case <-done:
		case <-timeout:
			t.Fatal("concurrent cache use timed out")
		}
	}
}
