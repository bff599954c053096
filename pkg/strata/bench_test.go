package strata_test

import (
	"fmt"
	"testing"

	"github.com/matzehuels/strata/pkg/strata"
)

// BenchmarkStratify settles a random 100 000 x 10 glass of the four
// reference liquids with each strategy.
func BenchmarkStratify(b *testing.B) {
	glass := strata.RandomGrid(strata.NewRand(42), 100_000, 10, strata.DefaultTable().Tokens())

	for _, s := range strata.Strategies() {
		b.Run(s.Name(), func(b *testing.B) {
			st := strata.New(strata.DefaultTable(), strata.WithStrategy(s))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := st.Stratify(glass); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkAlphabetGrowth compares strategies on 100 000 x 10 glasses as
// the number of distinct liquids grows.
func BenchmarkAlphabetGrowth(b *testing.B) {
	for _, n := range []int{4, 16, 256} {
		table := strata.SyntheticTable(n)
		glass := strata.RandomGrid(strata.NewRand(42), 100_000, 10, table.Tokens())

		for _, s := range strata.Strategies() {
			b.Run(fmt.Sprintf("alphabet=%d/%s", n, s.Name()), func(b *testing.B) {
				st := strata.New(table, strata.WithStrategy(s))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := st.Stratify(glass); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkOrder isolates the ordering step from flattening and reshaping.
func BenchmarkOrder(b *testing.B) {
	table := strata.DefaultTable()
	glass := strata.RandomGrid(strata.NewRand(7), 100_000, 10, table.Tokens())
	flat, _, err := strata.Flatten(glass)
	if err != nil {
		b.Fatalf("setup Flatten failed: %v", err)
	}

	for _, s := range strata.Strategies() {
		b.Run(s.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sorted, _ := s.Order(flat, table)
				if len(sorted) != len(flat) {
					b.Fatalf("Order returned %d tokens, want %d", len(sorted), len(flat))
				}
			}
		})
	}
}
