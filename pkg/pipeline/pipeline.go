// Package pipeline runs the load → stratify pipeline shared by every entry
// point of strata.
//
// The engine in pkg/strata is pure: it takes a grid and a compiled table and
// returns a grid. This package adds what a command or service needs around
// it: options with defaults, weight tables loaded from files and kept in a
// compiled-table cache, structured logging, observability hooks and coded
// errors.
//
// # Architecture
//
// A run consists of two stages:
//
//  1. Table: resolve the weight table (inline, from a file, or the default)
//     and compile it, reusing a cached compilation when the weights match.
//  2. Stratify: settle the glass with the selected strategy.
//
// [Runner.Compare] runs the second stage once per built-in strategy, times
// each and checks that all of them produce the same glass.
//
// # Usage
//
//	c, _ := cache.NewARCCache(cache.DefaultSize)
//	runner := pipeline.NewRunner(c, logger)
//	result, err := runner.Execute(ctx, glass, pipeline.Options{
//	    Strategy:  "buckets",
//	    TablePath: "liquids.toml",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Grid)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/strata/pkg/errors"
	strataio "github.com/matzehuels/strata/pkg/io"
	"github.com/matzehuels/strata/pkg/strata"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultTableName names the built-in reference table.
	DefaultTableName = "liquids"

	// DefaultRounds is the number of timed runs per strategy in Compare.
	DefaultRounds = 5

	// MaxRounds caps the rounds of a single Compare call.
	MaxRounds = 1000
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Strategy names the ordering strategy (see strata.StrategyByName).
	// Empty selects the default strategy.
	Strategy string `json:"strategy,omitempty"`

	// Table is an inline weight table. It takes precedence over TablePath.
	Table *strataio.TableFile `json:"table,omitempty"`

	// TablePath is a TOML, YAML or JSON table file. Empty selects the
	// built-in reference table.
	TablePath string `json:"table_path,omitempty"`

	// Strict rejects tokens missing from the table instead of weighting
	// them with the fallback.
	Strict bool `json:"strict,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	strategy  strata.Strategy
	validated bool
}

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	s, err := strata.StrategyByName(o.Strategy)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidStrategy, err, "invalid options")
	}
	o.strategy = s
	o.Strategy = s.Name()

	if o.Table == nil && o.TablePath != "" {
		if err := errors.ValidatePath(o.TablePath); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// StrategyImpl returns the resolved strategy. It is nil until
// ValidateAndSetDefaults succeeds.
func (o *Options) StrategyImpl() strata.Strategy {
	return o.strategy
}

// TableSource describes where the weight table comes from, for logs.
func (o *Options) TableSource() string {
	switch {
	case o.Table != nil && o.Table.Name != "":
		return o.Table.Name
	case o.Table != nil:
		return "inline"
	case o.TablePath != "":
		return o.TablePath
	default:
		return DefaultTableName
	}
}

// stratifierOpts returns the engine options matching o.
func (o *Options) stratifierOpts() []strata.Option {
	opts := []strata.Option{strata.WithStrategy(o.strategy)}
	if o.Strict {
		opts = append(opts, strata.WithStrictTokens())
	}
	return opts
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Grid is the settled glass.
	Grid strata.Grid

	// Table is the compiled weight table that ordered it.
	Table *strata.WeightTable

	// Strategy is the name of the strategy that ordered it.
	Strategy string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the table came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows      int
	Width     int
	Cells     int
	Unknown   int // tokens weighted with the fallback
	TableTime time.Duration
	SortTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	TableHit bool // Whether the compiled table came from cache
}

// Comparison is the outcome of Runner.Compare.
type Comparison struct {
	Rows    int
	Width   int
	Cells   int
	Unknown int
	Rounds  int

	// Timings holds one entry per strategy, in strata.Strategies order.
	Timings []Timing
}

// Timing summarizes the timed rounds of one strategy.
type Timing struct {
	Strategy string
	Best     time.Duration
	Mean     time.Duration
	Total    time.Duration
}

// CellsPerSecond returns the throughput of the best round.
func (t Timing) CellsPerSecond(cells int) float64 {
	if t.Best <= 0 {
		return 0
	}
	return float64(cells) / t.Best.Seconds()
}

// Fastest returns the timing with the lowest best round.
func (c *Comparison) Fastest() Timing {
	var best Timing
	for i, t := range c.Timings {
		if i == 0 || t.Best < best.Best {
			best = t
		}
	}
	return best
}

// Speedup returns how many times faster the fastest strategy was than the
// named one, comparing best rounds. It returns 0 for an unknown name.
func (c *Comparison) Speedup(strategy string) float64 {
	fastest := c.Fastest()
	for _, t := range c.Timings {
		if t.Strategy == strategy && fastest.Best > 0 {
			return float64(t.Best) / float64(fastest.Best)
		}
	}
	return 0
}
