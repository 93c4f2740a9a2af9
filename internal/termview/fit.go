package termview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bulletin/internal/cards"
)

// viewGap is the number of blank lines between top-level card views.
const viewGap = 1

// FitHeight renders a card's views into at most height rows. Views that are
// not scroll containers (the title and the button footer) always keep their
// full height; ScrollViews share whatever is left and clip their content.
// A height of zero or less means unbounded.
func FitHeight(views []cards.View, width, height int) string {
	var scrolls []*ScrollView
	fixed := 0
	for _, v := range views {
		if s, ok := v.(*ScrollView); ok {
			scrolls = append(scrolls, s)
			continue
		}
		fixed += lipgloss.Height(v.Render(width))
	}

	if len(scrolls) > 0 {
		each := 0
		if height > 0 {
			gaps := max(len(views)-1, 0) * viewGap
			each = max((height-fixed-gaps)/len(scrolls), 1)
		}
		for _, s := range scrolls {
			s.SetMaxHeight(each)
		}
	}

	parts := make([]string, 0, len(views))
	for _, v := range views {
		parts = append(parts, v.Render(width))
	}
	return strings.Join(parts, strings.Repeat("\n", viewGap+1))
}

// Buttons returns every ButtonView in views, in display order.
func Buttons(views []cards.View) []*ButtonView {
	var out []*ButtonView
	walk(views, func(v cards.View) {
		if b, ok := v.(*ButtonView); ok {
			out = append(out, b)
		}
	})
	return out
}

// ScrollViews returns every ScrollView in views.
func ScrollViews(views []cards.View) []*ScrollView {
	var out []*ScrollView
	walk(views, func(v cards.View) {
		if s, ok := v.(*ScrollView); ok {
			out = append(out, s)
		}
	})
	return out
}

func walk(views []cards.View, fn func(cards.View)) {
	for _, v := range views {
		fn(v)
		if c, ok := v.(cards.Container); ok {
			walk(c.Children(), fn)
		}
	}
}
