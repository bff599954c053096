package io

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/strata/pkg/errors"
)

// Grid formats.
const (
	FormatJSON  = "json"
	FormatText  = "text"
	FormatChars = "chars"
)

// Table formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// GridFormats lists the accepted grid formats.
var GridFormats = []string{FormatJSON, FormatText, FormatChars}

// TableFormats lists the accepted table formats.
var TableFormats = []string{FormatTOML, FormatYAML, FormatJSON}

// FormatFromPath returns the grid format implied by the extension of path.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".glass":
		return FormatChars
	default:
		return FormatText
	}
}

// TableFormatFromPath returns the table format implied by the extension of
// path. Unknown extensions are rejected.
func TableFormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"cannot tell table format of %q (want .toml, .yaml, .yml or .json)", path)
}

// ValidateGridFormat checks that format names a grid format.
func ValidateGridFormat(format string) error {
	return validateFormat(format, GridFormats)
}

// ValidateTableFormat checks that format names a table format.
func ValidateTableFormat(format string) error {
	return validateFormat(format, TableFormats)
}

func validateFormat(format string, valid []string) error {
	if !slices.Contains(valid, format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(valid, ", "))
	}
	return nil
}

func openError(path string, err error) error {
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	return errors.Wrap(errors.ErrCodeFileIO, err, "open %s", path)
}

func lineError(code errors.Code, line int, format string, args ...any) error {
	return errors.New(code, "line %d: %s", line, fmt.Sprintf(format, args...))
}
