package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/matzehuels/strata/pkg/observability"
	"github.com/matzehuels/strata/pkg/strata"
)

// ARCCache is an in-memory adaptive replacement cache of weight tables.
type ARCCache struct {
	arc *lru.ARCCache
}

// NewARCCache creates a cache holding up to size tables.
// A size of zero or less selects DefaultSize.
func NewARCCache(size int) (Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	arc, err := lru.NewARC(size)
	if err != nil {
		return nil, fmt.Errorf("create table cache: %w", err)
	}
	return &ARCCache{arc: arc}, nil
}

// Get retrieves a table from the cache.
func (c *ARCCache) Get(ctx context.Context, key string) (*strata.WeightTable, bool) {
	if v, ok := c.arc.Get(key); ok {
		if t, ok := v.(*strata.WeightTable); ok {
			observability.Cache().OnCacheHit(ctx, KeyTypeTable)
			return t, true
		}
	}
	observability.Cache().OnCacheMiss(ctx, KeyTypeTable)
	return nil, false
}

// Set stores a table in the cache.
func (c *ARCCache) Set(ctx context.Context, key string, t *strata.WeightTable) {
	if t == nil {
		return
	}
	c.arc.Add(key, t)
	observability.Cache().OnCacheSet(ctx, KeyTypeTable, t.Len())
}

// Len returns the number of cached tables.
func (c *ARCCache) Len() int { return c.arc.Len() }

// Purge empties the cache.
func (c *ARCCache) Purge() { c.arc.Purge() }

// Ensure ARCCache implements Cache.
var _ Cache = (*ARCCache)(nil)
