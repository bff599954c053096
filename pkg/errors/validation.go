package errors

import (
	"strings"
	"unicode"
)

// MaxTokenLength bounds the length of a single token read from a file.
const MaxTokenLength = 64

// MaxCells bounds the size of generated benchmark glasses.
const MaxCells = 100_000_000

// ValidateToken validates a token read from a grid or table file.
//
// The validation rules are intentionally conservative:
//   - No empty tokens
//   - No whitespace or control characters
//   - Maximum length of MaxTokenLength bytes
func ValidateToken(tok string) error {
	if tok == "" {
		return New(ErrCodeInvalidInput, "token cannot be empty")
	}
	if len(tok) > MaxTokenLength {
		return New(ErrCodeInvalidInput, "token too long (max %d characters): %.16q...", MaxTokenLength, tok)
	}
	for _, r := range tok {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "token %q contains whitespace or control characters", tok)
		}
	}
	return nil
}

// ValidatePath validates a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	if strings.ContainsFunc(path, unicode.IsControl) {
		return New(ErrCodeInvalidPath, "path contains invalid characters")
	}

	return nil
}

// ValidateDimensions validates the shape of a generated glass.
// Both sides must be positive and the cell count at most MaxCells.
func ValidateDimensions(rows, width int) error {
	if rows <= 0 || width <= 0 {
		return New(ErrCodeInvalidInput, "rows and width must be positive (got %dx%d)", rows, width)
	}
	if rows > MaxCells/width {
		return New(ErrCodeInvalidInput, "glass too large: %dx%d exceeds %d cells", rows, width, MaxCells)
	}
	return nil
}
