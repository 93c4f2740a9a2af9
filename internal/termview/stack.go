package termview

import (
	"strings"

	"github.com/papapumpkin/bulletin/internal/cards"
)

// Stack renders views top to bottom with Spacing blank lines between them.
type Stack struct {
	Spacing int
	Views   []cards.View
}

// Children returns the stacked views.
func (s *Stack) Children() []cards.View { return s.Views }

// Render draws every child at width.
func (s *Stack) Render(width int) string {
	parts := make([]string, 0, len(s.Views))
	for _, v := range s.Views {
		parts = append(parts, v.Render(width))
	}
	return strings.Join(parts, "\n"+strings.Repeat("\n", max(s.Spacing, 0)))
}
