package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}

func TestFindLine(t *testing.T) {
	output := "first\n\x1b[1msecond line\x1b[0m\nthird"

	assert.Equal(t, "second line", FindLine(output, "second"))
	assert.Empty(t, FindLine(output, "fourth"))
	assert.True(t, ContainsLine(output, "third"))
	assert.Equal(t, 1, LineIndex(output, "second"))
	assert.Equal(t, -1, LineIndex(output, "missing"))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\n\nb\n\n  \n"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "left", Key("left").String())
	assert.Equal(t, "q", Key("q").String())
	assert.Equal(t, "ctrl+c", Key("ctrl+c").String())
	assert.Equal(t, "end", Key("end").String())
}

func TestExecuteCmd(t *testing.T) {
	assert.Nil(t, ExecuteCmd(nil))

	type ping struct{}
	msgs := ExecuteCmd(tea.Batch(
		func() tea.Msg { return ping{} },
		func() tea.Msg { return ping{} },
	))
	assert.Len(t, msgs, 2)
}
