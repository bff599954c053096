package io

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/strata/pkg/errors"
	"github.com/matzehuels/strata/pkg/strata"
)

// =============================================================================
// Grid Import
// =============================================================================

// ImportGrid reads a glass from path. An empty format is inferred with
// [FormatFromPath]. A path of "-" reads standard input.
func ImportGrid(path, format string) (strata.Grid, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	if format == "" {
		format = FormatFromPath(path)
	}
	if path == "-" {
		return ReadGrid(os.Stdin, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer f.Close()

	g, err := ReadGrid(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "read %s", path)
	}
	return g, nil
}

// ReadGrid decodes a glass in the given format from r.
// ReadGrid does not check that the glass is rectangular; the engine does.
// ReadGrid does not close r.
func ReadGrid(r io.Reader, format string) (strata.Grid, error) {
	if err := ValidateGridFormat(format); err != nil {
		return nil, err
	}
	switch format {
	case FormatJSON:
		return readGridJSON(r)
	case FormatChars:
		return readGridLines(r, splitChars)
	default:
		return readGridLines(r, strings.Fields)
	}
}

func readGridJSON(r io.Reader) (strata.Grid, error) {
	var g strata.Grid
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGrid, err, "decode")
	}
	if g == nil {
		g = strata.Grid{}
	}
	for i, row := range g {
		for j, tok := range row {
			if err := errors.ValidateToken(string(tok)); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidGrid, err, "row %d, col %d", i, j)
			}
		}
	}
	return g, nil
}

func readGridLines(r io.Reader, split func(string) []string) (strata.Grid, error) {
	g := strata.Grid{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if !utf8.ValidString(text) {
			return nil, lineError(errors.ErrCodeInvalidGrid, line, "invalid UTF-8")
		}
		fields := split(text)
		row := make([]strata.Token, len(fields))
		for j, f := range fields {
			if err := errors.ValidateToken(f); err != nil {
				return nil, lineError(errors.ErrCodeInvalidGrid, line, "%s", errors.UserMessage(err))
			}
			row[j] = strata.Token(f)
		}
		g = append(g, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileIO, err, "scan")
	}
	return g, nil
}

// splitChars returns every non-space rune of s as its own token.
func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, string(r))
	}
	return out
}

// =============================================================================
// Grid Export
// =============================================================================

// ExportGrid writes g to path. An empty format is inferred with
// [FormatFromPath]. A path of "-" writes standard output.
func ExportGrid(path string, g strata.Grid, format string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if format == "" {
		format = FormatFromPath(path)
	}
	if path == "-" {
		return WriteGrid(os.Stdout, g, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileIO, err, "create %s", path)
	}
	if err := WriteGrid(f, g, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeFileIO, err, "close %s", path)
	}
	return nil
}

// WriteGrid encodes g in the given format to w.
// The chars format requires every token to be a single character. The
// line formats cannot represent empty rows, so glasses with one are only
// written as json.
func WriteGrid(w io.Writer, g strata.Grid, format string) error {
	if err := ValidateGridFormat(format); err != nil {
		return err
	}
	if format != FormatJSON {
		for i, row := range g {
			if len(row) == 0 {
				return errors.New(errors.ErrCodeInvalidFormat,
					"row %d is empty; only %s keeps empty rows", i, FormatJSON)
			}
		}
	}
	switch format {
	case FormatJSON:
		return writeGridJSON(w, g)
	case FormatChars:
		return writeGridLines(w, g, "", true)
	default:
		return writeGridLines(w, g, " ", false)
	}
}

func writeGridJSON(w io.Writer, g strata.Grid) error {
	if g == nil {
		g = strata.Grid{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return errors.Wrap(errors.ErrCodeFileIO, err, "encode")
	}
	return nil
}

func writeGridLines(w io.Writer, g strata.Grid, sep string, chars bool) error {
	bw := bufio.NewWriter(w)
	for i, row := range g {
		for j, tok := range row {
			if chars && utf8.RuneCountInString(string(tok)) != 1 {
				return errors.New(errors.ErrCodeInvalidFormat,
					"token %q at row %d, col %d is not a single character", string(tok), i, j)
			}
			if j > 0 {
				bw.WriteString(sep)
			}
			bw.WriteString(string(tok))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeFileIO, err, "write")
	}
	return nil
}

// CharsCompatible reports whether every token of g is a single character.
func CharsCompatible(g strata.Grid) bool {
	for _, row := range g {
		for _, tok := range row {
			if utf8.RuneCountInString(string(tok)) != 1 {
				return false
			}
		}
	}
	return true
}
