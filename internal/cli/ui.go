package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/strata/pkg/strata"
)

// out receives all human-readable command output.
var out io.Writer = os.Stdout

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// liquidColors shade weight levels from light to heavy.
var liquidColors = []lipgloss.Color{
	lipgloss.Color("229"), // pale yellow
	lipgloss.Color("221"), // straw
	lipgloss.Color("117"), // light blue
	lipgloss.Color("75"),  // blue
	lipgloss.Color("172"), // amber
	lipgloss.Color("130"), // brown
	lipgloss.Color("97"),  // plum
	lipgloss.Color("88"),  // dark red
}

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleUnknown = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(out, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(out, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(out, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(out, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(out, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Fprintln(out, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(out, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printBlock prints a pre-rendered multi-line block.
func printBlock(s string) {
	fmt.Fprintln(out, s)
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Fprintln(out)
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints glass statistics on a single line.
func printStats(rows, width, unknown int, cached bool) {
	parts := []string{fmt.Sprintf("%dx%d", rows, width)}
	if unknown > 0 {
		parts = append(parts, fmt.Sprintf("%d unknown", unknown))
	}

	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	line += StyleDim.Render(" · ") + statusStyle.Render("table "+status)
	fmt.Fprintln(out, line)
}

// =============================================================================
// Glass Rendering
// =============================================================================

// liquidStyle returns the style of tok: a color per weight level, bold red
// for tokens missing from t.
func liquidStyle(tok strata.Token, t *strata.WeightTable, levels map[float64]int) lipgloss.Style {
	w, ok := t.Lookup(tok)
	if !ok {
		return styleUnknown
	}
	c := liquidColors[levels[w]%len(liquidColors)]
	return lipgloss.NewStyle().Foreground(c)
}

// weightLevels numbers the distinct weights of t from lightest to heaviest.
func weightLevels(t *strata.WeightTable) map[float64]int {
	levels := make(map[float64]int)
	for _, e := range t.Entries() {
		if _, ok := levels[e.Weight]; !ok {
			levels[e.Weight] = len(levels)
		}
	}
	return levels
}

// renderGlass draws g inside a rounded border, one colored cell per token.
// Cells are padded to the widest token.
func renderGlass(title string, g strata.Grid, t *strata.WeightTable) string {
	levels := weightLevels(t)
	cellWidth := 1
	for _, row := range g {
		for _, tok := range row {
			cellWidth = max(cellWidth, lipgloss.Width(string(tok)))
		}
	}

	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, tok := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(liquidStyle(tok, t, levels).Width(cellWidth).Render(string(tok)))
		}
	}

	glass := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), false, true, true, true).
		BorderForeground(colorDim).
		Padding(0, 1).
		Render(b.String())
	return lipgloss.JoinVertical(lipgloss.Center, StyleTitle.Render(title), glass)
}

// renderLegend lists the tokens of t with their colors and weights,
// lightest first.
func renderLegend(t *strata.WeightTable) string {
	levels := weightLevels(t)
	parts := make([]string, 0, t.Len()+1)
	for _, e := range t.Entries() {
		parts = append(parts, liquidStyle(e.Token, t, levels).Render(string(e.Token))+
			StyleDim.Render(fmt.Sprintf("=%g", e.Weight)))
	}
	parts = append(parts, styleUnknown.Render("?")+StyleDim.Render(fmt.Sprintf("=%g", t.Fallback())))
	return strings.Join(parts, "  ")
}

// =============================================================================
// Tables
// =============================================================================

// renderTable draws a rounded table with a bold gray header. highlight
// selects a row drawn in green, or -1 for none.
func renderTable(headers []string, rows [][]string, highlight int) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case row == highlight:
				return cell.Foreground(colorGreen)
			}
			return cell
		})
	return t.Render()
}
