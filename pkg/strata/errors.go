package strata

import (
	"errors"
	"fmt"
)

var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("strata: all rows must have the same length")
	// ErrUnknownToken indicates a token outside the weight table in strict mode.
	ErrUnknownToken = errors.New("strata: token not in weight table")
	// ErrInvalidWeight indicates a NaN or infinite weight or fallback.
	ErrInvalidWeight = errors.New("strata: weights must be finite")
	// ErrUnknownStrategy indicates a strategy name that is not registered.
	ErrUnknownStrategy = errors.New("strata: unknown strategy")
)

// GridError reports the first row whose length differs from the first row.
type GridError struct {
	Row  int // index of the offending row
	Want int // width taken from row 0
	Got  int // length of the offending row
}

func (e *GridError) Error() string {
	return fmt.Sprintf("strata: row %d has %d tokens, want %d", e.Row, e.Got, e.Want)
}

// Is makes errors.Is(err, ErrNonRectangular) hold for every GridError.
func (e *GridError) Is(target error) bool {
	return target == ErrNonRectangular
}

// UnknownTokenError reports the first unknown token met in strict mode.
type UnknownTokenError struct {
	Token Token
	Row   int
	Col   int
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("strata: unknown token %q at row %d, col %d", string(e.Token), e.Row, e.Col)
}

// Is makes errors.Is(err, ErrUnknownToken) hold for every UnknownTokenError.
func (e *UnknownTokenError) Is(target error) bool {
	return target == ErrUnknownToken
}
