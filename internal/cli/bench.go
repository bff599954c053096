package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/strata/pkg/errors"
	strataio "github.com/matzehuels/strata/pkg/io"
	"github.com/matzehuels/strata/pkg/pipeline"
	"github.com/matzehuels/strata/pkg/strata"
)

// Benchmark defaults: a 100 000 x 10 glass of the four reference liquids.
const (
	defaultBenchRows     = 100_000
	defaultBenchWidth    = 10
	defaultBenchAlphabet = 4
	defaultBenchSeed     = 42
)

// benchOptions holds the flags of the bench command.
type benchOptions struct {
	rows     int
	width    int
	alphabet int
	rounds   int
	seed     uint64
}

// benchCommand creates the bench command comparing the ordering strategies.
func (c *CLI) benchCommand() *cobra.Command {
	bo := benchOptions{
		rows:     defaultBenchRows,
		width:    defaultBenchWidth,
		alphabet: defaultBenchAlphabet,
		rounds:   pipeline.DefaultRounds,
		seed:     defaultBenchSeed,
	}
	opts := c.baseOptions()

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the ordering strategies on a random glass",
		Long: `Compare the ordering strategies on a random glass.

Fills a glass with liquids drawn uniformly from the alphabet, settles it
with every strategy, checks that all of them agree and prints their timings.
An alphabet of 4 uses the reference liquids; any other size uses synthetic
liquids t000, t001, ... of distinct weights. With --table the alphabet is
the tokens of that table.`,
		Example: `  strata bench
  strata bench --alphabet 256 --rounds 10
  strata bench --rows 1000 --width 1000 --table oils.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBench(cmd.Context(), bo, opts)
		},
	}

	cmd.Flags().IntVar(&bo.rows, "rows", bo.rows, "glass rows")
	cmd.Flags().IntVar(&bo.width, "width", bo.width, "glass width")
	cmd.Flags().IntVar(&bo.alphabet, "alphabet", bo.alphabet, "number of distinct liquids (ignored with --table)")
	cmd.Flags().IntVar(&bo.rounds, "rounds", bo.rounds, "timed runs per strategy")
	cmd.Flags().Uint64Var(&bo.seed, "seed", bo.seed, "random seed")
	cmd.Flags().StringVar(&opts.TablePath, "table", opts.TablePath, tableFlagHelp)

	return cmd
}

// runBench builds the random glass, compares strategies and prints the table.
func (c *CLI) runBench(ctx context.Context, bo benchOptions, opts pipeline.Options) error {
	if err := errors.ValidateDimensions(bo.rows, bo.width); err != nil {
		return err
	}
	if bo.alphabet <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "alphabet must be positive (got %d)", bo.alphabet)
	}

	runner, err := c.newRunner()
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	opts.Strict = false

	if opts.TablePath == "" && bo.alphabet != defaultBenchAlphabet {
		tf := strataio.TableFileFrom(fmt.Sprintf("synthetic-%d", bo.alphabet), strata.SyntheticTable(bo.alphabet))
		opts.Table = &tf
	}
	table, err := runner.LoadTable(ctx, opts)
	if err != nil {
		return err
	}

	g := strata.RandomGrid(strata.NewRand(bo.seed), bo.rows, bo.width, table.Tokens())
	c.Logger.Debug("generated glass",
		"rows", bo.rows,
		"width", bo.width,
		"alphabet", table.Len(),
		"seed", bo.seed)

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Settling %s cells...", humanize.Comma(int64(bo.rows*bo.width))))
	spinner.Start()

	cmp, err := runner.Compare(ctx, g, opts, bo.rounds)
	if err != nil {
		spinner.StopWithError("Benchmark failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Compared %d strategies", len(cmp.Timings)))

	printBlock(renderComparison(cmp))
	printSuccess("All strategies agree")
	printDetail("%s cells · %d liquids · %d rounds · seed %d",
		humanize.Comma(int64(cmp.Cells)), table.Len(), cmp.Rounds, bo.seed)
	return nil
}

// renderComparison formats a comparison as a table, fastest strategy
// highlighted.
func renderComparison(cmp *pipeline.Comparison) string {
	fastest := cmp.Fastest().Strategy
	highlight := -1
	rows := make([][]string, 0, len(cmp.Timings))
	for i, t := range cmp.Timings {
		if t.Strategy == fastest {
			highlight = i
		}
		rows = append(rows, []string{
			t.Strategy,
			formatDuration(t.Best),
			formatDuration(t.Mean),
			humanize.SIWithDigits(t.CellsPerSecond(cmp.Cells), 1, "cells/s"),
			fmt.Sprintf("%.2fx", cmp.Speedup(t.Strategy)),
		})
	}
	return renderTable([]string{"Strategy", "Best", "Mean", "Throughput", "Relative"}, rows, highlight)
}

// formatDuration rounds d to a readable precision.
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Microsecond).String()
	}
}
