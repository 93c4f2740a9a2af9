package cards

// View is an opaque piece of rendered card content produced by a ViewFactory.
type View interface {
	// Render draws the view at the given content width.
	Render(width int) string
}

// ButtonKind distinguishes the two button roles a page can wire.
type ButtonKind int

const (
	// ButtonAction is the primary button; pressing it runs the page's action handler.
	ButtonAction ButtonKind = iota
	// ButtonAlternative is the secondary button; pressing it runs the alternative handler.
	ButtonAlternative
)

// String returns the lowercase role name.
func (k ButtonKind) String() string {
	if k == ButtonAlternative {
		return "alternative"
	}
	return "action"
}

// Button is a pressable View. Pages bind handlers in SetUp and unbind them in
// TearDown; an unbound button ignores presses.
type Button interface {
	View
	// Kind reports the button's role.
	Kind() ButtonKind
	// Bind installs the press handler, replacing any previous one.
	Bind(fn func())
	// Unbind removes the press handler.
	Unbind()
	// Press invokes the bound handler and reports whether one was bound.
	Press() bool
}

// Container is implemented by views that group other views. Pages walk
// containers to find nested buttons.
type Container interface {
	View
	// Children returns the grouped views in display order.
	Children() []View
}

// ViewFactory builds the widgets a page's content is made of. Implementations
// are pure constructors and must not touch Manager state.
type ViewFactory interface {
	// TitleLabel builds the card's heading.
	TitleLabel(text string) View
	// DescriptionLabel builds a body paragraph.
	DescriptionLabel(text string) View
	// ActionButton builds the primary button.
	ActionButton(title string) Button
	// AlternativeButton builds the secondary button.
	AlternativeButton(title string) Button
	// GroupStack arranges views vertically separated by spacing blank lines.
	GroupStack(spacing int, views ...View) Container
	// ScrollableContainer wraps a view so it can be scrolled when the card
	// does not have room for it.
	ScrollableContainer(view View) Container
}

// walkButtons calls fn for every Button in views, descending into containers.
func walkButtons(views []View, fn func(Button)) {
	for _, v := range views {
		if b, ok := v.(Button); ok {
			fn(b)
		}
		if c, ok := v.(Container); ok {
			walkButtons(c.Children(), fn)
		}
	}
}
