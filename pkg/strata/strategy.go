package strata

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Strategy orders a flat buffer of tokens by ascending weight.
//
// Implementations must be stable: tokens of equal weight keep their
// relative input order. They must not modify flat and must return a new
// slice of the same length together with the number of tokens that were
// resolved through the table's fallback.
type Strategy interface {
	Name() string
	Order(flat []Token, t *WeightTable) (sorted []Token, unknown int)
}

// Strategy names accepted by StrategyByName.
const (
	StrategyBuckets    = "buckets"
	StrategyStableSort = "sort"
)

// DefaultStrategy is used when no strategy is configured.
var DefaultStrategy Strategy = Buckets{}

// StableSort is the general-purpose strategy: one pass resolves every token
// into a (weight, token) pair, then a stable comparison sort orders the
// pairs by weight. O(n log n); it assumes nothing about the alphabet.
type StableSort struct{}

// Name implements Strategy.
func (StableSort) Name() string { return StrategyStableSort }

type weighted struct {
	weight float64
	token  Token
}

// Order implements Strategy.
func (StableSort) Order(flat []Token, t *WeightTable) ([]Token, int) {
	pairs := make([]weighted, len(flat))
	unknown := 0
	for i, tok := range flat {
		w, ok := t.weights[tok]
		if !ok {
			w = t.fallback
			unknown++
		}
		pairs[i] = weighted{weight: w, token: tok}
	}

	slices.SortStableFunc(pairs, func(a, b weighted) int {
		return cmp.Compare(a.weight, b.weight)
	})

	out := make([]Token, len(pairs))
	for i, p := range pairs {
		out[i] = p.token
	}
	return out, unknown
}

// Buckets is a counting sort over the table's distinct weights. Each
// weight level is a bucket; tokens are counted per bucket, bucket offsets
// are derived from prefix sums, and a second pass scatters every token to
// the next free slot of its bucket. Scattering in input order makes it
// stable by construction.
//
// Buckets runs in O(n + k) for k distinct weights and never compares
// floats per element. It is the preferred strategy for small alphabets.
type Buckets struct{}

// Name implements Strategy.
func (Buckets) Name() string { return StrategyBuckets }

// Order implements Strategy.
func (Buckets) Order(flat []Token, t *WeightTable) ([]Token, int) {
	idx := make([]int32, len(flat))
	offsets := make([]int, t.Levels()+1)
	unknown := 0
	for i, tok := range flat {
		b, ok := t.bucketOf(tok)
		if !ok {
			unknown++
		}
		idx[i] = int32(b)
		offsets[b+1]++
	}
	for b := 1; b < len(offsets); b++ {
		offsets[b] += offsets[b-1]
	}

	out := make([]Token, len(flat))
	for i, tok := range flat {
		b := idx[i]
		out[offsets[b]] = tok
		offsets[b]++
	}
	return out, unknown
}

// Strategies returns every built-in strategy, default first.
func Strategies() []Strategy {
	return []Strategy{Buckets{}, StableSort{}}
}

// StrategyNames returns the canonical names of Strategies.
func StrategyNames() []string {
	all := Strategies()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name()
	}
	return names
}

// StrategyByName resolves a strategy name, case-insensitively. An empty
// name selects DefaultStrategy. Besides the canonical names it accepts
// "bucket" and "counting" for Buckets, "stable" and "stablesort" for
// StableSort.
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultStrategy, nil
	case StrategyBuckets, "bucket", "counting":
		return Buckets{}, nil
	case StrategyStableSort, "stable", "stablesort":
		return StableSort{}, nil
	}
	return nil, fmt.Errorf("%w: %q (must be one of: %s)", ErrUnknownStrategy, name, strings.Join(StrategyNames(), ", "))
}
