// Package io reads and writes glasses and weight tables.
//
// # Grid Formats
//
// Three grid formats are supported:
//
//   - json: an array of rows, each an array of token strings.
//
//     [["H", "H", "W", "O"], ["W", "W", "O", "W"]]
//
//   - text: one row per line, tokens separated by whitespace. Use it for
//     multi-character tokens.
//
//     mercury water oil
//     oil oil water
//
//   - chars: one row per line, every character is a token and whitespace
//     is ignored. This is the compact form of the reference liquids.
//
//     HHWO
//     WWOW
//
// In the text formats blank lines and lines starting with '#' are skipped,
// so zero-width glasses can only be stored as JSON; writing one in a line
// format fails with INVALID_FORMAT.
//
// [FormatFromPath] picks a format from the file extension: ".json" for
// json, ".glass" for chars and text for anything else.
//
// # Weight Tables
//
// A weight table file names the density of every token and the fallback
// for unknown ones. TOML, YAML and JSON are accepted, chosen by extension:
//
//	name = "liquids"
//	fallback = 0.0
//
//	[weights]
//	H = 1.36
//	W = 1.00
//	A = 0.87
//	O = 0.8
//
// YAML 1.1 reads unquoted keys such as Y, N, on and off as booleans; quote
// them.
//
// # Import and Export
//
// Use [ImportGrid] and [ExportGrid] for files, or [ReadGrid] and [WriteGrid]
// for any io.Reader or io.Writer. Tables follow the same pattern with
// [ImportTable], [ExportTable], [ReadTable] and [WriteTable].
//
// Every token read from a file must pass errors.ValidateToken. Failures are
// returned as *errors.Error with codes INVALID_GRID, INVALID_TABLE,
// INVALID_FORMAT, FILE_NOT_FOUND or FILE_IO.
package io
