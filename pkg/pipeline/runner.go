package pipeline

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/strata/pkg/cache"
	"github.com/matzehuels/strata/pkg/errors"
	strataio "github.com/matzehuels/strata/pkg/io"
	"github.com/matzehuels/strata/pkg/observability"
	"github.com/matzehuels/strata/pkg/strata"
)

// Runner encapsulates pipeline execution with table caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute loads the weight table and settles g.
func (r *Runner) Execute(ctx context.Context, g strata.Grid, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{Strategy: opts.Strategy}

	// Stage 1: Table
	tableStart := time.Now()
	table, hit, err := r.LoadTableWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Table = table
	result.Stats.TableTime = time.Since(tableStart)
	result.CacheInfo.TableHit = hit

	opts.Logger.Debug("loaded weight table",
		"source", opts.TableSource(),
		"tokens", table.Len(),
		"levels", table.Levels(),
		"cached", hit)

	// Stage 2: Stratify
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report, elapsed, err := stratify(ctx, strata.New(table, opts.stratifierOpts()...), g)
	if err != nil {
		return nil, err
	}
	result.Grid = report.Grid
	result.Stats.Rows = report.Rows
	result.Stats.Width = report.Width
	result.Stats.Cells = report.Cells()
	result.Stats.Unknown = report.Unknown
	result.Stats.SortTime = elapsed

	if report.Unknown > 0 {
		opts.Logger.Warn("tokens missing from weight table",
			"count", report.Unknown,
			"fallback", table.Fallback())
	}
	opts.Logger.Info("stratified glass",
		"rows", report.Rows,
		"width", report.Width,
		"strategy", report.Strategy,
		"duration", elapsed)

	return result, nil
}

// Compare settles g with every built-in strategy, rounds times each, and
// reports their timings. It fails with ErrCodeInternal if two strategies
// disagree on the settled glass. A rounds value of zero or less selects
// DefaultRounds.
func (r *Runner) Compare(ctx context.Context, g strata.Grid, opts Options, rounds int) (*Comparison, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	if rounds > MaxRounds {
		return nil, errors.New(errors.ErrCodeInvalidInput, "rounds too large: %d exceeds %d", rounds, MaxRounds)
	}

	table, _, err := r.LoadTableWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{Rounds: rounds}
	var baseline strata.Report
	for i, s := range strata.Strategies() {
		opts.strategy = s
		st := strata.New(table, opts.stratifierOpts()...)

		timing := Timing{Strategy: s.Name()}
		var last strata.Report
		for round := range rounds {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			report, elapsed, err := stratify(ctx, st, g)
			if err != nil {
				return nil, err
			}
			timing.Total += elapsed
			if round == 0 || elapsed < timing.Best {
				timing.Best = elapsed
			}
			last = report
		}
		timing.Mean = timing.Total / time.Duration(rounds)
		cmp.Timings = append(cmp.Timings, timing)

		if i == 0 {
			baseline = last
			cmp.Rows, cmp.Width, cmp.Cells, cmp.Unknown = last.Rows, last.Width, last.Cells(), last.Unknown
		} else if !last.Grid.Equal(baseline.Grid) {
			return nil, errors.New(errors.ErrCodeInternal,
				"strategies %s and %s disagree", baseline.Strategy, last.Strategy)
		}

		opts.Logger.Debug("timed strategy",
			"strategy", timing.Strategy,
			"best", timing.Best,
			"mean", timing.Mean)
	}

	opts.Logger.Info("compared strategies",
		"cells", cmp.Cells,
		"rounds", rounds,
		"fastest", cmp.Fastest().Strategy)

	return cmp, nil
}

// LoadTableWithCacheInfo resolves and compiles the weight table selected by
// opts and reports whether the compiled table came from the cache.
func (r *Runner) LoadTableWithCacheInfo(ctx context.Context, opts Options) (*strata.WeightTable, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	var tf strataio.TableFile
	switch {
	case opts.Table != nil:
		tf = *opts.Table
	case opts.TablePath != "":
		loaded, err := strataio.ImportTable(opts.TablePath)
		if err != nil {
			return nil, false, err
		}
		tf = loaded
	default:
		tf = strataio.TableFileFrom(DefaultTableName, strata.DefaultTable())
	}

	weights, err := tf.TokenWeights()
	if err != nil {
		return nil, false, err
	}

	// Try cache first
	cacheKey := cache.TableKey(weights, tf.Fallback)
	if t, hit := r.Cache.Get(ctx, cacheKey); hit {
		return t, true, nil // Cache hit
	}

	t, err := strata.NewWeightTable(weights, tf.Fallback)
	if err != nil {
		return nil, false, wrapEngineError(err)
	}
	r.Cache.Set(ctx, cacheKey, t)

	return t, false, nil // Cache miss
}

// LoadTable is a convenience wrapper that calls LoadTableWithCacheInfo and discards the cache hit info.
func (r *Runner) LoadTable(ctx context.Context, opts Options) (*strata.WeightTable, error) {
	t, _, err := r.LoadTableWithCacheInfo(ctx, opts)
	return t, err
}

// stratify runs one engine call between the observability hooks.
func stratify(ctx context.Context, st *strata.Stratifier, g strata.Grid) (strata.Report, time.Duration, error) {
	name := st.Strategy().Name()
	cells := g.Cells()

	observability.Stratify().OnStratifyStart(ctx, name, cells)
	start := time.Now()
	report, err := st.StratifyReport(g)
	elapsed := time.Since(start)
	observability.Stratify().OnStratifyComplete(ctx, name, cells, report.Unknown, elapsed, err)

	if err != nil {
		return report, elapsed, wrapEngineError(err)
	}
	return report, elapsed, nil
}

// wrapEngineError maps engine errors onto error codes.
func wrapEngineError(err error) error {
	var (
		gridErr    *strata.GridError
		unknownErr *strata.UnknownTokenError
	)
	switch {
	case stderrors.As(err, &gridErr):
		return errors.Wrap(errors.ErrCodeInvalidGrid, err, "malformed glass")
	case stderrors.As(err, &unknownErr):
		return errors.Wrap(errors.ErrCodeUnknownToken, err, "strict mode")
	case stderrors.Is(err, strata.ErrInvalidWeight):
		return errors.Wrap(errors.ErrCodeInvalidTable, err, "compile table")
	case stderrors.Is(err, strata.ErrUnknownStrategy):
		return errors.Wrap(errors.ErrCodeInvalidStrategy, err, "select strategy")
	}
	return errors.Wrap(errors.ErrCodeInternal, err, "stratify")
}

// applyLogger sets the runner's logger on options if not already set.
// It must run before ValidateAndSetDefaults, which falls back to a discard
// logger.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
