package strata

// Stratifier settles glasses with a fixed table and strategy. It holds no
// per-call state, so one Stratifier may be shared between goroutines.
type Stratifier struct {
	table    *WeightTable
	strategy Strategy
	strict   bool
}

// Option configures a Stratifier.
type Option func(*Stratifier)

// WithStrategy selects the ordering strategy. A nil strategy keeps the
// default.
func WithStrategy(s Strategy) Option {
	return func(st *Stratifier) {
		if s != nil {
			st.strategy = s
		}
	}
}

// WithStrictTokens rejects any grid containing a token outside the table
// with an *UnknownTokenError instead of applying the fallback weight.
func WithStrictTokens() Option {
	return func(st *Stratifier) { st.strict = true }
}

// New returns a Stratifier for table t. A nil table selects DefaultTable.
func New(t *WeightTable, opts ...Option) *Stratifier {
	if t == nil {
		t = DefaultTable()
	}
	s := &Stratifier{table: t, strategy: DefaultStrategy}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Table returns the weight table in use.
func (s *Stratifier) Table() *WeightTable { return s.table }

// Strategy returns the ordering strategy in use.
func (s *Stratifier) Strategy() Strategy { return s.strategy }

// Report is the outcome of one stratification.
type Report struct {
	Grid     Grid   // settled glass, same shape as the input
	Rows     int    // row count
	Width    int    // row width
	Unknown  int    // tokens weighted with the fallback
	Strategy string // name of the strategy that ordered the tokens
}

// Cells returns Rows * Width.
func (r Report) Cells() int { return r.Rows * r.Width }

// Stratify settles g: the result has the shape of g and, read row-major,
// its weights never decrease. Tokens of equal weight keep their input
// order. g is not modified.
//
// Stratify fails with a *GridError if g is not rectangular and, in strict
// mode, with an *UnknownTokenError if g holds a token outside the table.
func (s *Stratifier) Stratify(g Grid) (Grid, error) {
	r, err := s.StratifyReport(g)
	if err != nil {
		return nil, err
	}
	return r.Grid, nil
}

// StratifyReport is Stratify with counts attached.
func (s *Stratifier) StratifyReport(g Grid) (Report, error) {
	report := Report{Strategy: s.strategy.Name()}

	flat, width, err := Flatten(g)
	if err != nil {
		return report, err
	}
	if len(g) == 0 {
		report.Grid = Grid{}
		return report, nil
	}

	if s.strict {
		if err := s.firstUnknown(flat, width); err != nil {
			return report, err
		}
	}

	sorted, unknown := s.strategy.Order(flat, s.table)

	report.Grid = ReshapeRows(sorted, len(g), width)
	report.Rows = len(g)
	report.Width = width
	report.Unknown = unknown
	return report, nil
}

// firstUnknown reports the first token of flat missing from the table, in
// row-major order, or nil if every token is known.
func (s *Stratifier) firstUnknown(flat []Token, width int) error {
	for i, tok := range flat {
		if _, ok := s.table.Lookup(tok); !ok {
			return &UnknownTokenError{Token: tok, Row: i / width, Col: i % width}
		}
	}
	return nil
}

// Stratify settles g with table t (DefaultTable if nil) using
// DefaultStrategy. Unknown tokens take the table's fallback weight.
func Stratify(g Grid, t *WeightTable) (Grid, error) {
	return New(t).Stratify(g)
}
