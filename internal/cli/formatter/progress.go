package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45%, colored green above
// two thirds, yellow above one third and red below.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderCollected renders "3/5" next to a progress bar. An empty checklist
// reads as complete.
func RenderCollected(collected, total, width int) string {
	pct := 1.0
	if total > 0 {
		pct = float64(collected) / float64(total)
	}
	return fmt.Sprintf("%s  %d/%d", RenderProgress(pct, width), collected, total)
}
