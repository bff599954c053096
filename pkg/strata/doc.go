// Package strata settles a glass of liquids into layers.
//
// # Overview
//
// A glass is a rectangular [Grid] of [Token] values, one token per kind of
// liquid. Every token has a density in a [WeightTable]. Stratifying the
// glass reorders its tokens so that, read row by row from the top, the
// densities never decrease: the lightest liquid floats to the first row
// and the heaviest sinks to the last one. The shape of the glass is kept.
//
//	glass := strata.Grid{
//	    {"H", "H", "W", "O"},
//	    {"W", "W", "O", "W"},
//	    {"H", "H", "O", "O"},
//	}
//	settled, err := strata.Stratify(glass, strata.DefaultTable())
//	// [[O O O O] [W W W W] [H H H H]]
//
// # Pipeline
//
// Each call runs four steps and keeps no state between calls:
//
//  1. [Flatten] validates the grid and copies it into a row-major buffer.
//  2. The table resolves every token to a weight.
//  3. A [Strategy] orders the buffer by weight, stable on ties.
//  4. [ReshapeRows] slices the ordered buffer back into rows.
//
// # Strategies
//
// [StableSort] pairs each token with its weight and runs a stable
// comparison sort: O(n log n), no assumption about the alphabet.
//
// [Buckets] is a counting sort over the distinct weights of the table:
// O(n + k) for k weights and stable by construction. It is the default.
// Both strategies produce identical output for identical input.
//
// # Unknown Tokens
//
// Tokens missing from the table take the table's fallback weight
// ([DefaultFallback] is 0.0, which sorts them ahead of every reference
// liquid) and are counted in [Report.Unknown]. With [WithStrictTokens] the
// whole call fails with an [*UnknownTokenError] instead.
//
// # Errors
//
//   - [ErrNonRectangular]: rows of differing length, as a [*GridError].
//   - [ErrUnknownToken]: unknown token in strict mode.
//   - [ErrInvalidWeight]: NaN or infinite weight passed to [NewWeightTable].
//   - [ErrUnknownStrategy]: name not accepted by [StrategyByName].
package strata
