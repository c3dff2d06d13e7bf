package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestBlendColors_Spread(t *testing.T) {
	colors := blendColors(5, T().Primary, T().Secondary)

	assert.Len(t, colors, 5)
	assert.NotEqual(t, colorToHex(colors[0]), colorToHex(colors[4]))
}

func TestBlendColors_Single(t *testing.T) {
	assert.Len(t, blendColors(1, "#000000", "#ffffff"), 1)
}

func TestGradientBar(t *testing.T) {
	bar := GradientBar("━", 6, T().Primary, T().Secondary)

	assert.Equal(t, "━━━━━━", ansi.Strip(bar))
	assert.Empty(t, GradientBar("━", 0, T().Primary, T().Secondary))
}

func TestApplyGradient_Empty(t *testing.T) {
	assert.Empty(t, ApplyGradient("", lipgloss.Color("#000000"), lipgloss.Color("#ffffff")))
}

func TestCardStyle_Width(t *testing.T) {
	out := CardStyle(20, true, "").Render("hello")

	assert.Equal(t, 20, lipgloss.Width(out))
	assert.Equal(t, 3, lipgloss.Height(out))
}
