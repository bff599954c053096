package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/strata/internal/config"
	"github.com/matzehuels/strata/pkg/buildinfo"
	"github.com/matzehuels/strata/pkg/cache"
	"github.com/matzehuels/strata/pkg/observability"
	"github.com/matzehuels/strata/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "strata"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a new CLI instance. cfg supplies flag defaults.
func New(w io.Writer, level log.Level, cfg config.Config) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: cfg,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Strata settles a glass of liquids into layers",
		Long: `Strata reorders a grid of liquid tokens by density, lightest on top,
keeping the shape of the glass and the order of equal liquids.`,
		Version:       buildinfo.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.sortCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use and routes pipeline
// events to the debug log.
func (c *CLI) newRunner() (*pipeline.Runner, error) {
	tables, err := cache.NewARCCache(c.Config.TableCacheSize)
	if err != nil {
		return nil, err
	}
	hooks := &logHooks{logger: c.Logger}
	observability.SetStratifyHooks(hooks)
	observability.SetCacheHooks(hooks)
	return pipeline.NewRunner(tables, c.Logger), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// tableFlagHelp is shared by every command accepting --table.
const tableFlagHelp = "weight table file (.toml, .yaml, .json); default: built-in liquids"

// baseOptions returns pipeline options seeded from the environment.
func (c *CLI) baseOptions() pipeline.Options {
	return pipeline.Options{
		Strategy:  c.Config.Strategy,
		TablePath: c.Config.Table,
		Strict:    c.Config.Strict,
	}
}
