package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bulletin/internal/termview"
)

// closeGlyph is drawn in the card's top-right corner when the close button
// is visible.
const closeGlyph = "✕"

// View renders the card at the given outer width, fitting it into maxHeight
// rows. It returns an empty string while the surface is hidden.
func (s *Surface) View(width, maxHeight int) string {
	if !s.visible {
		return ""
	}
	inner := s.factory.ContentWidth(width)

	var b strings.Builder
	budget := maxHeight - s.factory.FrameHeight()
	if header := s.header(inner); header != "" {
		b.WriteString(header)
		b.WriteString("\n")
		budget--
	}
	if maxHeight <= 0 {
		budget = 0
	} else {
		budget = max(budget, 1)
	}
	b.WriteString(termview.FitHeight(s.views, inner, budget))

	body := b.String()
	if s.reveal < revealFrames {
		body = revealLines(body, s.reveal)
	}
	return s.factory.Frame(width).Render(body)
}

// header renders the spinner on the left and the close glyph on the right.
func (s *Surface) header(width int) string {
	var left, right string
	if s.indicator {
		left = s.spinner.View()
	}
	if s.closeVisible {
		right = styleCloseButton.Render(closeGlyph)
	}
	if left == "" && right == "" {
		return ""
	}
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// revealLines keeps the first frame/revealFrames of body's lines.
func revealLines(body string, frame int) string {
	lines := strings.Split(body, "\n")
	n := max(len(lines)*frame/revealFrames, 1)
	return strings.Join(lines[:n], "\n")
}

// centerOverlay places content in the center of a width×height area.
func centerOverlay(content string, width, height int) string {
	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	if width <= 0 || height <= 0 {
		return content
	}

	leftPad := 0
	if contentWidth < width {
		leftPad = (width - contentWidth) / 2
	}

	topPad := 0
	if contentHeight < height {
		topPad = (height - contentHeight) / 2
	}

	return lipgloss.NewStyle().
		PaddingLeft(leftPad).
		PaddingTop(topPad).
		Render(content)
}
