package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	strataio "github.com/matzehuels/strata/pkg/io"
	"github.com/matzehuels/strata/pkg/pipeline"
)

// sortCommand creates the sort command for settling a glass file.
func (c *CLI) sortCommand() *cobra.Command {
	var (
		output       string
		inputFormat  string
		outputFormat string
	)
	opts := c.baseOptions()

	cmd := &cobra.Command{
		Use:   "sort [glass]",
		Short: "Settle a glass file into layers",
		Long: `Settle a glass file into layers.

The glass is read as JSON (.json), one character per token (.glass) or
whitespace-separated tokens (anything else); use --input-format to override.
Tokens missing from the weight table take its fallback weight unless --strict
is set. Use "-" to read standard input or write standard output.`,
		Example: `  strata sort glass.txt
  strata sort glass.json -o settled.json --strategy sort
  cat glass.txt | strata sort - -o - --table oils.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSort(cmd.Context(), args[0], opts, output, inputFormat, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `output file, "-" for stdout (default: <input>.sorted<ext>)`)
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "input format: json, text, chars (default: from extension)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: json, text, chars (default: from output extension)")
	cmd.Flags().StringVar(&opts.TablePath, "table", opts.TablePath, tableFlagHelp)
	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", opts.Strategy, "ordering strategy: buckets (default), sort")
	cmd.Flags().BoolVar(&opts.Strict, "strict", opts.Strict, "fail on tokens missing from the weight table")

	return cmd
}

// runSort loads the glass, settles it and writes the result.
func (c *CLI) runSort(ctx context.Context, input string, opts pipeline.Options, output, inputFormat, outputFormat string) error {
	g, err := strataio.ImportGrid(input, inputFormat)
	if err != nil {
		return fmt.Errorf("load glass %s: %w", input, err)
	}
	if inputFormat == "" {
		inputFormat = strataio.FormatFromPath(input)
	}

	runner, err := c.newRunner()
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	result, err := runner.Execute(ctx, g, opts)
	if err != nil {
		return err
	}

	outputPath := output
	if outputPath == "" {
		outputPath = sortedPath(input)
	}
	if outputFormat == "" {
		outputFormat = strataio.FormatFromPath(outputPath)
		if outputPath == "-" || filepath.Ext(outputPath) == "" {
			outputFormat = inputFormat
		}
	}

	if err := strataio.ExportGrid(outputPath, result.Grid, outputFormat); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	if outputPath == "-" {
		return nil
	}

	printSuccess("Settled %s with %s", input, result.Strategy)
	printFile(outputPath)
	printStats(result.Stats.Rows, result.Stats.Width, result.Stats.Unknown, result.CacheInfo.TableHit)
	if result.Stats.Unknown > 0 {
		printWarning("%d tokens not in the weight table took fallback weight %g",
			result.Stats.Unknown, result.Table.Fallback())
	}
	return nil
}

// sortedPath derives the default output path: glass.txt -> glass.sorted.txt.
// Standard input defaults to standard output.
func sortedPath(input string) string {
	if input == "-" {
		return "-"
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".sorted" + ext
}
