package termview

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bulletin/internal/cards"
)

// ScrollView shows its child through a viewport when the child is taller
// than the height FitHeight granted it.
type ScrollView struct {
	child     cards.View
	maxHeight int
	offset    int
	overflow  bool
}

// Children returns the wrapped view.
func (s *ScrollView) Children() []cards.View { return []cards.View{s.child} }

// SetMaxHeight bounds the rendered height. Zero or less means unbounded.
func (s *ScrollView) SetMaxHeight(h int) { s.maxHeight = h }

// MaxHeight returns the current bound.
func (s *ScrollView) MaxHeight() int { return s.maxHeight }

// ScrollBy moves the viewport by delta lines. The offset is clamped on the
// next Render.
func (s *ScrollView) ScrollBy(delta int) {
	s.offset = max(s.offset+delta, 0)
}

// Offset returns the number of lines scrolled past.
func (s *ScrollView) Offset() int { return s.offset }

// Overflowing reports whether the last Render had to clip the child.
func (s *ScrollView) Overflowing() bool { return s.overflow }

// Render draws the child, clipped to MaxHeight when it does not fit.
func (s *ScrollView) Render(width int) string {
	content := s.child.Render(width)
	if s.maxHeight <= 0 || lipgloss.Height(content) <= s.maxHeight {
		s.overflow = false
		s.offset = 0
		return content
	}

	vp := viewport.New(width, s.maxHeight)
	vp.SetContent(content)
	vp.SetYOffset(s.offset)
	s.offset = vp.YOffset
	s.overflow = true
	return vp.View()
}
