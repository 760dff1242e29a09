package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences so assertions are terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderCompactBar(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
		dim   bool
	}{
		{"0% normal", 0.0, 10, false},
		{"50% normal", 0.5, 10, false},
		{"100% normal", 1.0, 10, false},
		{"50% dimmed", 0.5, 10, true},
		{"over 100% clamps", 1.5, 10, false},
		{"negative clamps", -0.5, 10, false},
		{"tiny width clamps to 2", 0.5, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderCompactBar(tt.pct, tt.width, tt.dim)
			assert.NotEmpty(t, got)
			// Compact bar must not contain brackets or percentage text.
			assert.NotContains(t, got, "[")
			assert.NotContains(t, got, "]")
			assert.NotContains(t, got, "%")
		})
	}
}

func TestRenderCompactBarBlocks(t *testing.T) {
	bar0 := stripANSI(RenderCompactBar(0.0, 4, true))
	assert.Equal(t, strings.Repeat(emptyBlock, 4), bar0)

	bar100 := stripANSI(RenderCompactBar(1.0, 4, true))
	assert.Equal(t, strings.Repeat(filledBlock, 4), bar100)

	half := stripANSI(RenderCompactBar(0.5, 4, false))
	assert.Equal(t, filledBlock+filledBlock+emptyBlock+emptyBlock, half)
}

func TestRenderProgress_ShowsPercentage(t *testing.T) {
	got := stripANSI(RenderProgress(0.5, 10))
	assert.Equal(t, "[█████░░░░░]  50%", got)

	assert.Contains(t, stripANSI(RenderProgress(2, 4)), "100%")
	assert.Contains(t, stripANSI(RenderProgress(-1, 4)), "  0%")
}

func TestGoalBarStyle_Bands(t *testing.T) {
	tests := []struct {
		pct  float64
		want lipgloss.TerminalColor
	}{
		{100, ColorGreen},
		{80, ColorBlue},
		{75, ColorBlue},
		{50, ColorGreen},
		{49, ColorDim},
		{0, ColorDim},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GoalBarStyle(tt.pct).GetForeground(), "pct=%v", tt.pct)
	}
}
