package tui

// Minimum terminal dimensions for usable rendering.
const (
	MinWidth  = 30
	MinHeight = 8
)

// CompactWidth switches the footer to key-only hints.
const CompactWidth = 60

// cardWidth clamps the configured card width to the terminal, leaving a
// two-cell margin on each side when there is room.
func cardWidth(configured, termWidth int) int {
	if termWidth <= 0 {
		return configured
	}
	return max(min(configured, termWidth-4), min(MinWidth, termWidth))
}
