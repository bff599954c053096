package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	strataio "github.com/matzehuels/strata/pkg/io"
	"github.com/matzehuels/strata/pkg/pipeline"
)

// showCommand creates the show command for printing a colored glass.
func (c *CLI) showCommand() *cobra.Command {
	var (
		inputFormat string
		sorted      bool
	)
	opts := c.baseOptions()

	cmd := &cobra.Command{
		Use:   "show [glass]",
		Short: "Print a glass with one color per liquid",
		Long: `Print a glass with one color per liquid.

Colors follow the weight table from lightest to heaviest; tokens missing
from the table are drawn in bold red. With --sorted the settled glass is
printed next to the original.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(cmd.Context(), args[0], opts, inputFormat, sorted)
		},
	}

	cmd.Flags().StringVar(&inputFormat, "input-format", "", "input format: json, text, chars (default: from extension)")
	cmd.Flags().BoolVar(&sorted, "sorted", false, "also print the settled glass")
	cmd.Flags().StringVar(&opts.TablePath, "table", opts.TablePath, tableFlagHelp)
	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", opts.Strategy, "ordering strategy: buckets (default), sort")

	return cmd
}

// runShow renders the glass and, optionally, its settled form.
func (c *CLI) runShow(ctx context.Context, input string, opts pipeline.Options, inputFormat string, sorted bool) error {
	g, err := strataio.ImportGrid(input, inputFormat)
	if err != nil {
		return fmt.Errorf("load glass %s: %w", input, err)
	}

	runner, err := c.newRunner()
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	if !sorted {
		table, err := runner.LoadTable(ctx, opts)
		if err != nil {
			return err
		}
		printBlock(renderGlass(input, g, table))
		printBlock(renderLegend(table))
		return nil
	}

	result, err := runner.Execute(ctx, g, opts)
	if err != nil {
		return err
	}
	arrow := StyleDim.Render("  " + iconArrow + "  ")
	printBlock(lipgloss.JoinHorizontal(lipgloss.Center,
		renderGlass(input, g, result.Table),
		arrow,
		renderGlass("settled", result.Grid, result.Table)))
	printBlock(renderLegend(result.Table))
	return nil
}
