package cards

// ContentBuilder produces the views for a page. It is the one piece of a page
// that varies between page types.
type ContentBuilder interface {
	// Build returns the page's views in display order.
	Build(f ViewFactory) []View
}

// ContentFunc adapts a function to ContentBuilder.
type ContentFunc func(f ViewFactory) []View

// Build calls fn.
func (fn ContentFunc) Build(f ViewFactory) []View { return fn(f) }

// StandardContent is the stock card layout: a title, a scrollable body made
// of the description and any extra views, and a footer with up to two
// buttons.
//
// The body is the only part that scrolls. Title and footer always keep their
// full height; see termview.FitHeight for how the surface shrinks the body.
type StandardContent struct {
	Title            string
	Description      string
	ActionTitle      string
	AlternativeTitle string
	// Extra adds custom views below the description while keeping the
	// standard frame.
	Extra ContentBuilder
}

// Build lays out the standard card.
func (c StandardContent) Build(f ViewFactory) []View {
	views := []View{f.TitleLabel(c.Title)}

	var body []View
	if c.Description != "" {
		body = append(body, f.DescriptionLabel(c.Description))
	}
	if c.Extra != nil {
		body = append(body, c.Extra.Build(f)...)
	}
	if len(body) > 0 {
		views = append(views, f.ScrollableContainer(f.GroupStack(1, body...)))
	}

	var footer []View
	if c.ActionTitle != "" {
		footer = append(footer, f.ActionButton(c.ActionTitle))
	}
	if c.AlternativeTitle != "" {
		footer = append(footer, f.AlternativeButton(c.AlternativeTitle))
	}
	if len(footer) > 0 {
		views = append(views, f.GroupStack(0, footer...))
	}
	return views
}
