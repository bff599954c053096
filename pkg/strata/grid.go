package strata

// Token is a categorical symbol for one kind of liquid.
type Token string

// Grid is a glass: rows of tokens, read top to bottom, left to right.
// A Grid is expected to be rectangular; see Validate.
type Grid [][]Token

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Width returns the length of the first row, or 0 for an empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Cells returns Rows() * Width().
func (g Grid) Cells() int { return g.Rows() * g.Width() }

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]Token(nil), row...)
	}
	return out
}

// Equal reports whether g and other have the same shape and tokens.
// A nil grid equals an empty one.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(other[i]) {
			return false
		}
		for j := range g[i] {
			if g[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Validate checks that every row has the width of row 0.
// It returns a *GridError naming the first offending row.
func Validate(g Grid) error {
	w := g.Width()
	for i, row := range g {
		if len(row) != w {
			return &GridError{Row: i, Want: w, Got: len(row)}
		}
	}
	return nil
}

// Flatten validates g and returns its tokens in row-major order together
// with the row width. Element i*width+j of the result is g[i][j].
// An empty grid yields a nil buffer and width 0.
//
// The returned buffer is always freshly allocated.
func Flatten(g Grid) ([]Token, int, error) {
	if len(g) == 0 {
		return nil, 0, nil
	}
	if err := Validate(g); err != nil {
		return nil, 0, err
	}
	w := len(g[0])
	flat := make([]Token, 0, len(g)*w)
	for _, row := range g {
		flat = append(flat, row...)
	}
	return flat, w, nil
}

// Reshape slices flat into rows of the given width. Row i holds
// flat[i*width : (i+1)*width]. Rows alias flat; no tokens are copied.
//
// A trailing partial row is kept as a shorter last row. A width of 0 or
// an empty buffer yields an empty grid; use ReshapeRows to keep the row
// count of a zero-width glass.
func Reshape(flat []Token, width int) Grid {
	if width <= 0 || len(flat) == 0 {
		return Grid{}
	}
	rows := (len(flat) + width - 1) / width
	return ReshapeRows(flat, rows, width)
}

// ReshapeRows is Reshape with an explicit row count. It is the inverse of
// Flatten for any rectangular grid, including R rows of width 0.
func ReshapeRows(flat []Token, rows, width int) Grid {
	out := make(Grid, rows)
	for i := range out {
		lo := i * width
		hi := min(lo+width, len(flat))
		if lo > hi {
			lo = hi
		}
		out[i] = flat[lo:hi:hi]
	}
	return out
}
