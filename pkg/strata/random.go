package strata

import "math/rand/v2"

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// RandomGrid fills a rows x width glass with tokens drawn uniformly from
// alphabet. It returns an empty grid if alphabet is empty.
func RandomGrid(rng *rand.Rand, rows, width int, alphabet []Token) Grid {
	if len(alphabet) == 0 || rows <= 0 {
		return Grid{}
	}
	flat := make([]Token, rows*width)
	for i := range flat {
		flat[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return ReshapeRows(flat, rows, width)
}
