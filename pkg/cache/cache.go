// Package cache keeps compiled weight tables in memory.
//
// Compiling a [strata.WeightTable] validates every weight and derives the
// bucket levels used by the counting strategy. A long-lived pipeline
// runner sees the same few tables over and over, so it looks them up here
// by a content hash of their weights before compiling again.
//
// Two implementations are provided:
//   - [ARCCache]: adaptive replacement cache backed by hashicorp/golang-lru
//   - [NullCache]: never stores anything (caching disabled)
//
// Every lookup and store is reported to [observability.Cache] with the key
// type "table".
package cache

import (
	"context"

	"github.com/matzehuels/strata/pkg/strata"
)

// DefaultSize is the number of tables an ARCCache holds by default.
const DefaultSize = 64

// KeyTypeTable is the key type reported to cache hooks.
const KeyTypeTable = "table"

// Cache stores compiled weight tables by key. Implementations must be safe
// for concurrent use.
type Cache interface {
	// Get returns the table stored under key and whether it was found.
	Get(ctx context.Context, key string) (*strata.WeightTable, bool)

	// Set stores t under key, possibly evicting older entries.
	Set(ctx context.Context, key string, t *strata.WeightTable)

	// Len returns the number of stored tables.
	Len() int

	// Purge removes every entry.
	Purge()
}
