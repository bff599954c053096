// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about stratify runs and weight-table cache lookups.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The engine in pkg/strata never calls hooks; pkg/pipeline does.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetStratifyHooks(&myStratifyHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Stratify().OnStratifyStart(ctx, strategy, cells)
//	// ... settle the glass ...
//	observability.Stratify().OnStratifyComplete(ctx, strategy, cells, unknown, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Stratify Hooks
// =============================================================================

// StratifyHooks receives events from pipeline runs.
type StratifyHooks interface {
	// OnStratifyStart records the start of one stratification.
	OnStratifyStart(ctx context.Context, strategy string, cells int)

	// OnStratifyComplete records its outcome. unknown counts tokens that took
	// the fallback weight.
	OnStratifyComplete(ctx context.Context, strategy string, cells, unknown int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write. size is the number of entries stored
	// under the key.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopStratifyHooks is a no-op implementation of StratifyHooks.
type NoopStratifyHooks struct{}

func (NoopStratifyHooks) OnStratifyStart(context.Context, string, int) {}
func (NoopStratifyHooks) OnStratifyComplete(context.Context, string, int, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	stratifyHooks StratifyHooks = NoopStratifyHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetStratifyHooks registers custom stratify hooks.
// This should be called once at application startup before any pipeline runs.
func SetStratifyHooks(h StratifyHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		stratifyHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Stratify returns the registered stratify hooks.
func Stratify() StratifyHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return stratifyHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	stratifyHooks = NoopStratifyHooks{}
	cacheHooks = NoopCacheHooks{}
}
