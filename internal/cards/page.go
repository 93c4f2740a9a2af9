package cards

import (
	"fmt"
	"time"
)

// Flags are the per-page display settings the Manager reads once per
// activation.
type Flags struct {
	Dismissable         bool // esc and Dismiss are allowed
	RequiresCloseButton bool // show the close affordance
	StartsWithIndicator bool // show the activity indicator on display
	RespondsToKeyboard  bool // surface should keep the card clear of input areas
}

// DefaultFlags returns the flags a new page starts with: dismissable with a
// close button.
func DefaultFlags() Flags {
	return Flags{Dismissable: true, RequiresCloseButton: true}
}

// Handler is a page callback. It receives the page it was registered on.
type Handler func(p *Page)

// SetUpFunc registers listeners when a page is set up and returns the
// function that unregisters them. A nil return means nothing to undo.
type SetUpFunc func(p *Page) (cleanup func())

// Page is a single card in a flow: display flags, a content builder, an
// optional forward link, and lifecycle hooks. Pages are used by pointer and
// must not be copied once handed to a Manager.
type Page struct {
	// ID identifies the page in telemetry and decks.
	ID string
	// Flags are read by the Manager at every activation.
	Flags Flags
	// Content builds the page's views. Activating a page without content is
	// a programmer error.
	Content ContentBuilder

	next       *Page
	activation *Activation
	views      []View
	bound      []Button
	cleanups   []func()
	isSetUp    bool

	onAction      Handler
	onAlternative Handler
	onPresented   Handler
	onDismissed   Handler
	onWillDisplay Handler
	onSetUp       []SetUpFunc
}

// NewPage returns a page with DefaultFlags and the given content.
func NewPage(id string, content ContentBuilder) *Page {
	return &Page{ID: id, Flags: DefaultFlags(), Content: content}
}

// OnAction registers the handler run when the action button is pressed.
func (p *Page) OnAction(h Handler) *Page {
	p.onAction = h
	return p
}

// OnAlternative registers the handler run when the alternative button is pressed.
func (p *Page) OnAlternative(h Handler) *Page {
	p.onAlternative = h
	return p
}

// OnPresented registers the callback run by OnDisplay.
func (p *Page) OnPresented(h Handler) *Page {
	p.onPresented = h
	return p
}

// OnDismissed registers the callback run by OnDismiss.
func (p *Page) OnDismissed(h Handler) *Page {
	p.onDismissed = h
	return p
}

// OnWillDisplay registers the callback run by WillDisplay.
func (p *Page) OnWillDisplay(h Handler) *Page {
	p.onWillDisplay = h
	return p
}

// OnSetUp adds a listener registration that runs in SetUp. Its cleanup runs
// in TearDown.
func (p *Page) OnSetUp(fn SetUpFunc) *Page {
	p.onSetUp = append(p.onSetUp, fn)
	return p
}

// Next returns the page DisplayNext moves to, or nil.
func (p *Page) Next() *Page { return p.next }

// Active reports whether the page is the Manager's current page.
func (p *Page) Active() bool { return p.activation.Live() }

// Activation returns the page's current activation handle, nil when inactive.
func (p *Page) Activation() *Activation { return p.activation }

// Manager returns the Manager presenting this page, or nil when the page is
// not active. Deferred callbacks use the nil return as their cancellation
// signal.
func (p *Page) Manager() *Manager { return p.activation.Manager() }

// Views returns the views built for the current activation.
func (p *Page) Views() []View { return p.views }

// MakeContentViews builds the page's views through factory. It panics with
// ErrNoContent when the page has no ContentBuilder.
func (p *Page) MakeContentViews(factory ViewFactory) []View {
	if p.Content == nil {
		panic(fmt.Errorf("cards: page %q: %w", p.ID, ErrNoContent))
	}
	p.views = p.Content.Build(factory)
	return p.views
}

// SetUp wires the page's buttons to its handlers and runs OnSetUp
// registrations. Calling SetUp on a page that is already set up does nothing.
func (p *Page) SetUp() {
	if p.isSetUp {
		return
	}
	p.isSetUp = true

	walkButtons(p.views, func(b Button) {
		switch b.Kind() {
		case ButtonAction:
			b.Bind(func() { p.Action() })
		case ButtonAlternative:
			b.Bind(func() { p.Alternative() })
		}
		p.bound = append(p.bound, b)
	})

	for _, fn := range p.onSetUp {
		if cleanup := fn(p); cleanup != nil {
			p.cleanups = append(p.cleanups, cleanup)
		}
	}
}

// TearDown undoes everything SetUp registered. It is safe to call any number
// of times and on pages that were never set up.
func (p *Page) TearDown() {
	if !p.isSetUp {
		return
	}
	p.isSetUp = false

	for _, b := range p.bound {
		b.Unbind()
	}
	p.bound = nil

	for i := len(p.cleanups) - 1; i >= 0; i-- {
		p.cleanups[i]()
	}
	p.cleanups = nil
}

// WillDisplay runs immediately before the page becomes visible.
func (p *Page) WillDisplay() {
	if p.onWillDisplay != nil {
		p.onWillDisplay(p)
	}
}

// OnDisplay runs after the page is visible and invokes the presented
// callback. A page that starts with the indicator is responsible for hiding
// it later.
func (p *Page) OnDisplay() {
	if p.onPresented != nil {
		p.onPresented(p)
	}
}

// OnDismiss runs after the page left the screen because the flow was
// dismissed. The page is no longer active at this point.
func (p *Page) OnDismiss() {
	if p.onDismissed != nil {
		p.onDismissed(p)
	}
}

// Action runs the action handler if the page is active and reports whether
// it ran.
func (p *Page) Action() bool {
	if !p.Active() || p.onAction == nil {
		return false
	}
	p.onAction(p)
	return true
}

// Alternative runs the alternative handler if the page is active and reports
// whether it ran.
func (p *Page) Alternative() bool {
	if !p.Active() || p.onAlternative == nil {
		return false
	}
	p.onAlternative(p)
	return true
}

// Schedule runs fn after d through the Manager's Scheduler, but only if the
// activation that scheduled it is still live at that point. It reports false
// when the page is inactive or the Manager has no Scheduler.
func (p *Page) Schedule(d time.Duration, fn func(m *Manager)) bool {
	act := p.activation
	m := act.Manager()
	if m == nil || m.scheduler == nil {
		return false
	}
	m.scheduler.After(d, func() {
		if owner := act.Manager(); owner != nil {
			fn(owner)
		}
	})
	return true
}

func (p *Page) attach(a *Activation) { p.activation = a }

func (p *Page) detach() {
	p.activation.revoke()
	p.activation = nil
}
