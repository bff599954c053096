package strata

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// DefaultFallback is the weight given to tokens missing from a table.
// Every weight in DefaultTable is positive, so unknown tokens settle first.
const DefaultFallback = 0.0

// Reference liquids and their densities.
const (
	Honey   Token = "H"
	Water   Token = "W"
	Alcohol Token = "A"
	Oil     Token = "O"
)

// Entry is one token and its weight.
type Entry struct {
	Token  Token   `json:"token"`
	Weight float64 `json:"weight"`
}

// WeightTable maps tokens to weights. It is immutable once built and safe
// for concurrent use.
//
// Besides the lookup map the table keeps its distinct weights in ascending
// order; every token, and the fallback, is assigned the index of its
// weight in that list. Buckets uses these indices to order tokens without
// comparing floats per element.
type WeightTable struct {
	weights  map[Token]float64
	fallback float64

	levels         []float64     // distinct weights, ascending, fallback included
	bucket         map[Token]int // token -> index into levels
	fallbackBucket int
}

// NewWeightTable builds a table from weights and a fallback for tokens not
// present in weights. It returns ErrInvalidWeight if any weight or the
// fallback is NaN or infinite. The weights map is copied.
func NewWeightTable(weights map[Token]float64, fallback float64) (*WeightTable, error) {
	if !finite(fallback) {
		return nil, fmt.Errorf("%w: fallback is %v", ErrInvalidWeight, fallback)
	}
	t := &WeightTable{
		weights:  make(map[Token]float64, len(weights)),
		fallback: fallback,
		bucket:   make(map[Token]int, len(weights)),
	}
	levels := make([]float64, 0, len(weights)+1)
	for tok, w := range weights {
		if !finite(w) {
			return nil, fmt.Errorf("%w: %q is %v", ErrInvalidWeight, string(tok), w)
		}
		t.weights[tok] = w
		levels = append(levels, w)
	}
	levels = append(levels, fallback)
	slices.Sort(levels)
	t.levels = slices.Compact(levels)

	for tok, w := range t.weights {
		t.bucket[tok] = t.levelOf(w)
	}
	t.fallbackBucket = t.levelOf(fallback)
	return t, nil
}

// MustWeightTable is like NewWeightTable but panics on error.
func MustWeightTable(weights map[Token]float64, fallback float64) *WeightTable {
	t, err := NewWeightTable(weights, fallback)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultTable returns the reference liquids table:
// honey 1.36, water 1.00, alcohol 0.87, oil 0.8, fallback DefaultFallback.
func DefaultTable() *WeightTable {
	return MustWeightTable(map[Token]float64{
		Honey:   1.36,
		Water:   1.00,
		Alcohol: 0.87,
		Oil:     0.8,
	}, DefaultFallback)
}

// SyntheticTable returns an n-token table with tokens "t000", "t001", ...
// weighted 1..n in order. It exists to benchmark strategies as the
// alphabet grows.
func SyntheticTable(n int) *WeightTable {
	weights := make(map[Token]float64, n)
	for i := range n {
		weights[SyntheticToken(i)] = float64(i + 1)
	}
	return MustWeightTable(weights, DefaultFallback)
}

// SyntheticToken returns the i-th token of SyntheticTable.
func SyntheticToken(i int) Token {
	return Token(fmt.Sprintf("t%03d", i))
}

// Weight returns the weight of tok, or the fallback if tok is unknown.
func (t *WeightTable) Weight(tok Token) float64 {
	if w, ok := t.weights[tok]; ok {
		return w
	}
	return t.fallback
}

// Lookup returns the weight of tok and whether tok is in the table.
func (t *WeightTable) Lookup(tok Token) (float64, bool) {
	w, ok := t.weights[tok]
	return w, ok
}

// Fallback returns the weight used for unknown tokens.
func (t *WeightTable) Fallback() float64 { return t.fallback }

// Len returns the number of known tokens.
func (t *WeightTable) Len() int { return len(t.weights) }

// Levels returns the number of distinct weights, fallback included.
func (t *WeightTable) Levels() int { return len(t.levels) }

// Entries returns the known tokens ordered by weight, ties by token.
func (t *WeightTable) Entries() []Entry {
	out := make([]Entry, 0, len(t.weights))
	for tok, w := range t.weights {
		out = append(out, Entry{Token: tok, Weight: w})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.Token, b.Token)
	})
	return out
}

// Tokens returns the known tokens in Entries order.
func (t *WeightTable) Tokens() []Token {
	entries := t.Entries()
	out := make([]Token, len(entries))
	for i, e := range entries {
		out[i] = e.Token
	}
	return out
}

// bucketOf returns the level index of tok and whether tok is known.
func (t *WeightTable) bucketOf(tok Token) (int, bool) {
	if b, ok := t.bucket[tok]; ok {
		return b, true
	}
	return t.fallbackBucket, false
}

func (t *WeightTable) levelOf(w float64) int {
	i, _ := slices.BinarySearch(t.levels, w)
	return i
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
