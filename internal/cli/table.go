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

// tableCommand creates the table command for inspecting weight tables.
func (c *CLI) tableCommand() *cobra.Command {
	var export string
	opts := c.baseOptions()

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print or export the weight table",
		Long: `Print the weight table, lightest liquid first.

Without --table the built-in reference liquids are shown. With --export the
table is written to a file instead; the format follows the extension
(.toml, .yaml, .yml, .json). Exporting the built-in table is a quick way to
start a custom one.`,
		Example: `  strata table
  strata table --table oils.yaml
  strata table --export liquids.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTable(cmd.Context(), opts, export)
		},
	}

	cmd.Flags().StringVar(&opts.TablePath, "table", opts.TablePath, tableFlagHelp)
	cmd.Flags().StringVar(&export, "export", "", "write the table to this file instead of printing it")

	return cmd
}

// runTable prints or exports the selected table.
func (c *CLI) runTable(ctx context.Context, opts pipeline.Options, export string) error {
	runner, err := c.newRunner()
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	table, err := runner.LoadTable(ctx, opts)
	if err != nil {
		return err
	}
	name := tableName(opts)

	if export != "" {
		if err := strataio.ExportTable(export, strataio.TableFileFrom(name, table)); err != nil {
			return err
		}
		printSuccess("Exported table %s", name)
		printFile(export)
		return nil
	}

	levels := weightLevels(table)
	rows := make([][]string, 0, table.Len())
	for _, e := range table.Entries() {
		swatch := liquidStyle(e.Token, table, levels).Render("███")
		rows = append(rows, []string{swatch, string(e.Token), fmt.Sprintf("%g", e.Weight)})
	}

	printKeyValue("Table", name)
	printKeyValue("Liquids", fmt.Sprintf("%d", table.Len()))
	printKeyValue("Fallback", fmt.Sprintf("%g", table.Fallback()))
	printBlock(renderTable([]string{"", "Token", "Weight"}, rows, -1))
	return nil
}

// tableName returns a display name for the table selected by opts.
func tableName(opts pipeline.Options) string {
	if opts.TablePath != "" && opts.Table == nil {
		base := filepath.Base(opts.TablePath)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return opts.TableSource()
}
