package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text unchanged", "Tromsø", "Tromsø"},
		{"control characters removed", "a\x1b[31mb\x07", "a[31mb"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp replaced", "a\u00a0b", "a b"},
		{"invalid bytes dropped", "a\xffb", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"wide characters", "日本語テキスト", 7, "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxWidth))
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		maxLines int
		want     []string
	}{
		{"fits on one line", "aurora borealis", 20, 0, []string{"aurora borealis"}},
		{"breaks on spaces", "the quick brown fox", 10, 0, []string{"the quick", "brown fox"}},
		{"long word cut", "abcdefghij kl", 4, 0, []string{"abcd", "efgh", "ij", "kl"}},
		{"line limit adds ellipsis", "one two three four", 9, 1, []string{"one two…"}},
		{"empty", "", 10, 0, nil},
		{"zero width", "text", 0, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.input, tt.width, tt.maxLines))
		})
	}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab   ", Center("ab", 7))
	assert.Equal(t, "abcdef", Center("abcdef", 3))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
}

func TestRow(t *testing.T) {
	assert.Equal(t, "left    right", Row("left", "right", 13))
	assert.Equal(t, "left right", Row("left", "right", 3), "at least one space")
}

func TestSeparatorAndEmptyLine(t *testing.T) {
	assert.Equal(t, "───", Separator(3))
	assert.Equal(t, "   ", EmptyLine(3))
	assert.Empty(t, Separator(-1))
}
