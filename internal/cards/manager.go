package cards

import "fmt"

// Option configures a Manager.
type Option func(*Manager)

// WithScheduler sets the Scheduler used by Page.Schedule. When the Surface
// itself implements Scheduler it is used unless this option overrides it.
func WithScheduler(s Scheduler) Option {
	return func(m *Manager) { m.scheduler = s }
}

// WithRecorder sets the Recorder that receives navigation events.
func WithRecorder(r Recorder) Option {
	return func(m *Manager) { m.recorder = r }
}

// Manager is the navigation state machine for one modal surface. It owns the
// current page and the back-stack; pages only ever reach it through their
// Activation.
//
// Manager is not safe for concurrent use. Every method must be called from the
// goroutine that drives the Surface.
type Manager struct {
	surface   Surface
	factory   ViewFactory
	scheduler Scheduler
	recorder  Recorder

	state     State
	current   *Page
	backStack []*Page
	animated  bool
	pending   *request
}

// NewManager returns an idle Manager presenting onto surface and building
// views with factory.
func NewManager(surface Surface, factory ViewFactory, opts ...Option) *Manager {
	m := &Manager{surface: surface, factory: factory}
	if s, ok := surface.(Scheduler); ok {
		m.scheduler = s
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// State returns the presentation state.
func (m *Manager) State() State { return m.state }

// Current returns the page on screen, or nil when idle.
func (m *Manager) Current() *Page { return m.current }

// Depth returns the number of pages on the back-stack.
func (m *Manager) Depth() int { return len(m.backStack) }

// BackStack returns a copy of the back-stack, root first.
func (m *Manager) BackStack() []*Page {
	out := make([]*Page, len(m.backStack))
	copy(out, m.backStack)
	return out
}

// Present shows root as the first page of a new flow. It returns
// ErrAlreadyPresented when a flow is already on screen.
func (m *Manager) Present(root *Page, animated bool) error {
	if root == nil {
		panic(fmt.Errorf("cards: present: %w", ErrNilPage))
	}
	return m.submit(request{kind: reqPresent, page: root, animated: animated})
}

// Push replaces the current page with next and keeps the current page on the
// back-stack.
func (m *Manager) Push(next *Page) error {
	if next == nil {
		panic(fmt.Errorf("cards: push: %w", ErrNilPage))
	}
	return m.submit(request{kind: reqPush, page: next})
}

// DisplayNext pushes the current page's Next. It returns ErrNoNextPage, and
// changes nothing, when there is none.
func (m *Manager) DisplayNext() error {
	return m.submit(request{kind: reqDisplayNext})
}

// Pop returns to the page below the current one on the back-stack.
func (m *Manager) Pop() error {
	return m.submit(request{kind: reqPop})
}

// PopToRoot unwinds the whole back-stack and shows the root page again.
// It succeeds without doing anything when the root is already current.
func (m *Manager) PopToRoot() error {
	return m.submit(request{kind: reqPopToRoot})
}

// Dismiss hides the flow if the current page is dismissable. Otherwise it
// returns ErrNotDismissable and leaves everything as it was.
func (m *Manager) Dismiss(animated bool) error {
	return m.submit(request{kind: reqDismiss, animated: animated})
}

// ForceDismiss hides the flow regardless of the current page's flags. Hosts
// use it for the close button and for shutting down.
func (m *Manager) ForceDismiss(animated bool) error {
	return m.submit(request{kind: reqDismiss, animated: animated, force: true})
}

// NotifyUserRequestedDismiss is called by the Surface when the user asks to
// leave from outside the card. It is honoured only for dismissable pages.
func (m *Manager) NotifyUserRequestedDismiss() error {
	return m.submit(request{kind: reqDismiss, animated: m.animated})
}

// ShowIndicator shows the activity indicator. It works from any page hook,
// including the root's, and does nothing outside a presented flow.
func (m *Manager) ShowIndicator() {
	if !m.state.hasPage() {
		return
	}
	m.surface.ShowIndicator()
	m.emit(EventIndicator, map[string]any{"visible": true})
}

// HideIndicator hides the activity indicator. Outside a presented flow it
// does nothing.
func (m *Manager) HideIndicator() {
	if !m.state.hasPage() {
		return
	}
	m.surface.HideIndicator()
	m.emit(EventIndicator, map[string]any{"visible": false})
}

// activate makes p the live page and runs its display sequence.
func (m *Manager) activate(p *Page, animated bool) {
	p.attach(newActivation(m))
	p.WillDisplay()

	views := p.MakeContentViews(m.factory)
	m.surface.Present(views, animated)
	m.surface.SetCloseButtonVisible(p.Flags.RequiresCloseButton)
	m.surface.SetOutsideDismissEnabled(p.Flags.Dismissable)
	if p.Flags.StartsWithIndicator {
		m.surface.ShowIndicator()
	}

	p.SetUp()
	p.OnDisplay()
}

// deactivate tears p down and revokes its activation.
func (m *Manager) deactivate(p *Page) {
	p.TearDown()
	p.detach()
}

func (m *Manager) currentID() string {
	if m.current == nil {
		return ""
	}
	return m.current.ID
}

func (m *Manager) emit(kind string, data map[string]any) {
	if m.recorder == nil {
		return
	}
	m.recorder.Record(kind, m.currentID(), data)
}
