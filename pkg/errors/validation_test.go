package errors

import (
	"strings"
	"testing"
)

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single letter", "H", false},
		{"word", "mercury", false},
		{"unicode", "мёд", false},
		{"punctuation", "?", false},

		{"empty", "", true},
		{"too long", strings.Repeat("x", MaxTokenLength+1), true},
		{"space", "sea water", true},
		{"tab", "a\tb", true},
		{"newline", "a\nb", true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateToken(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateToken(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateToken(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "glass.json", false},
		{"nested", "testdata/glass.txt", false},
		{"absolute", "/tmp/glass.json", false},
		{"stdin", "-", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "glass\x00.json", true},
		{"newline", "glass\n.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		rows, width int
		wantErr     bool
	}{
		{100_000, 10, false},
		{1, 1, false},
		{0, 10, true},
		{10, 0, true},
		{-1, 5, true},
		{MaxCells, 2, true},
	}

	for _, tt := range tests {
		err := ValidateDimensions(tt.rows, tt.width)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDimensions(%d, %d) error = %v, wantErr %v", tt.rows, tt.width, err, tt.wantErr)
		}
	}
}
