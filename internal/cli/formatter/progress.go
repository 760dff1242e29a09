package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct = clampUnit(pct)
	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return RenderStyledProgress(pct, width, style)
}

// RenderStyledProgress is RenderProgress with a caller-chosen bar color.
func RenderStyledProgress(pct float64, width int, style lipgloss.Style) string {
	pct = clampUnit(pct)
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(blocks(pct, width)), pct*100)
}

// RenderCompactBar renders just the blocks, without brackets or a
// percentage. Dimmed bars are used for secondary rows.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clampUnit(pct)
	style := StyleBlue
	if dim {
		style = StyleDim
	}
	return style.Render(blocks(pct, width))
}

func blocks(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clampUnit(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
