package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Stratify hooks
	s := NoopStratifyHooks{}
	s.OnStratifyStart(ctx, "buckets", 1_000_000)
	s.OnStratifyComplete(ctx, "buckets", 1_000_000, 3, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "table")
	c.OnCacheMiss(ctx, "table")
	c.OnCacheSet(ctx, "table", 4)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Stratify().(NoopStratifyHooks); !ok {
		t.Error("Stratify() should return NoopStratifyHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customStratify := &testStratifyHooks{}
	SetStratifyHooks(customStratify)
	if Stratify() != customStratify {
		t.Error("SetStratifyHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Stratify().(NoopStratifyHooks); !ok {
		t.Error("Reset() should restore NoopStratifyHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testStratifyHooks{}
	SetStratifyHooks(custom)

	// Setting nil should be ignored
	SetStratifyHooks(nil)
	SetCacheHooks(nil)

	if Stratify() != custom {
		t.Error("SetStratifyHooks(nil) should be ignored")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("SetCacheHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testStratifyHooks struct{ NoopStratifyHooks }
type testCacheHooks struct{ NoopCacheHooks }
