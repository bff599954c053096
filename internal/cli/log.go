// Package cli implements the strata command-line interface.
//
// The CLI is built using cobra and logs through charmbracelet/log. Human
// output (summaries, colored glasses, benchmark tables) is rendered with
// lipgloss; logs go to stderr.
//
// # Commands
//
//   - sort: Settle a glass file and write the result
//   - show: Print a glass with one color per liquid
//   - bench: Compare the ordering strategies on a random glass
//   - table: Print or export the weight table
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// STRATA_STRATEGY, STRATA_TABLE, STRATA_STRICT and STRATA_TABLE_CACHE_SIZE
// set flag defaults. All commands support --verbose (-v) for debug logging.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Compared 2 strategies (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
