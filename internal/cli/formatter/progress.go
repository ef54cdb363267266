package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for pct in 0..1.
// Completion reads green from two thirds, amber from one third, red below.
func RenderProgress(pct float64, width int) string {
	return fmt.Sprintf("[%s] %3.0f%%", RenderBar(pct, width), clamp01(pct)*100)
}

// RenderBar is the bare coloured bar of RenderProgress.
func RenderBar(pct float64, width int) string {
	pct = clamp01(pct)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}
	return style.Render(bar)
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
