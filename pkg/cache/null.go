package cache

import (
	"context"

	"github.com/matzehuels/strata/pkg/strata"
)

// NullCache is a no-op cache that never stores anything.
// Useful for testing or when caching should be disabled.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always returns a cache miss.
func (c *NullCache) Get(ctx context.Context, key string) (*strata.WeightTable, bool) {
	return nil, false
}

// Set does nothing.
func (c *NullCache) Set(ctx context.Context, key string, t *strata.WeightTable) {}

// Len is always zero.
func (c *NullCache) Len() int { return 0 }

// Purge does nothing.
func (c *NullCache) Purge() {}

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
