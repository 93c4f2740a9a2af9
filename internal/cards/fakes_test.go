package cards

import (
	"fmt"
	"strings"
	"time"
)

// fakeSurface records every call the Manager makes.
type fakeSurface struct {
	calls          []string
	views          []View
	closeVisible   bool
	outsideEnabled bool
	indicator      bool
	dismissed      int
}

func (s *fakeSurface) Present(views []View, animated bool) {
	s.views = views
	s.calls = append(s.calls, fmt.Sprintf("present(%d,%t)", len(views), animated))
}

func (s *fakeSurface) Dismiss(animated bool) {
	s.views = nil
	s.dismissed++
	s.calls = append(s.calls, fmt.Sprintf("dismiss(%t)", animated))
}

func (s *fakeSurface) SetCloseButtonVisible(v bool) {
	s.closeVisible = v
	s.calls = append(s.calls, fmt.Sprintf("close(%t)", v))
}

func (s *fakeSurface) SetOutsideDismissEnabled(v bool) {
	s.outsideEnabled = v
	s.calls = append(s.calls, fmt.Sprintf("outside(%t)", v))
}

func (s *fakeSurface) ShowIndicator() {
	s.indicator = true
	s.calls = append(s.calls, "indicator(on)")
}

func (s *fakeSurface) HideIndicator() {
	s.indicator = false
	s.calls = append(s.calls, "indicator(off)")
}

// fakeView is a plain text view.
type fakeView struct{ text string }

func (v *fakeView) Render(int) string { return v.text }

// fakeButton records binding activity.
type fakeButton struct {
	title   string
	kind    ButtonKind
	handler func()
	binds   int
	unbinds int
}

func (b *fakeButton) Render(int) string { return "[" + b.title + "]" }
func (b *fakeButton) Kind() ButtonKind  { return b.kind }
func (b *fakeButton) Bind(fn func())    { b.handler = fn; b.binds++ }
func (b *fakeButton) Unbind()           { b.handler = nil; b.unbinds++ }

func (b *fakeButton) Press() bool {
	if b.handler == nil {
		return false
	}
	b.handler()
	return true
}

// fakeGroup is a Container over plain children.
type fakeGroup struct{ children []View }

func (g *fakeGroup) Render(w int) string {
	parts := make([]string, 0, len(g.children))
	for _, c := range g.children {
		parts = append(parts, c.Render(w))
	}
	return strings.Join(parts, "\n")
}

func (g *fakeGroup) Children() []View { return g.children }

// fakeFactory builds fake views and remembers the buttons it made.
type fakeFactory struct {
	buttons []*fakeButton
}

func (f *fakeFactory) TitleLabel(text string) View       { return &fakeView{text: text} }
func (f *fakeFactory) DescriptionLabel(text string) View { return &fakeView{text: text} }

func (f *fakeFactory) ActionButton(title string) Button {
	b := &fakeButton{title: title, kind: ButtonAction}
	f.buttons = append(f.buttons, b)
	return b
}

func (f *fakeFactory) AlternativeButton(title string) Button {
	b := &fakeButton{title: title, kind: ButtonAlternative}
	f.buttons = append(f.buttons, b)
	return b
}

func (f *fakeFactory) GroupStack(_ int, views ...View) Container {
	return &fakeGroup{children: views}
}

func (f *fakeFactory) ScrollableContainer(view View) Container {
	return &fakeGroup{children: []View{view}}
}

// lastButton returns the most recently built button of kind.
func (f *fakeFactory) lastButton(kind ButtonKind) *fakeButton {
	for i := len(f.buttons) - 1; i >= 0; i-- {
		if f.buttons[i].kind == kind {
			return f.buttons[i]
		}
	}
	return nil
}

// fakeScheduler queues continuations until fire is called.
type fakeScheduler struct {
	queued []func()
}

func (s *fakeScheduler) After(_ time.Duration, fn func()) {
	s.queued = append(s.queued, fn)
}

func (s *fakeScheduler) fire() {
	q := s.queued
	s.queued = nil
	for _, fn := range q {
		fn()
	}
}

// fakeRecorder keeps the event kinds in order.
type fakeRecorder struct {
	kinds []string
	pages []string
}

func (r *fakeRecorder) Record(kind, pageID string, _ map[string]any) {
	r.kinds = append(r.kinds, kind)
	r.pages = append(r.pages, pageID)
}

func (r *fakeRecorder) count(kind string) int {
	n := 0
	for _, k := range r.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

// lifecycleLog collects lifecycle calls across pages in order.
type lifecycleLog struct {
	entries []string
}

func (l *lifecycleLog) add(format string, args ...any) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

// tracedPage builds a standard page whose every hook appends to log.
func tracedPage(id string, log *lifecycleLog) *Page {
	content := ContentFunc(func(f ViewFactory) []View {
		log.add("%s.build", id)
		return StandardContent{Title: id, ActionTitle: "Next", AlternativeTitle: "Skip"}.Build(f)
	})
	p := NewPage(id, content)
	p.OnWillDisplay(func(*Page) { log.add("%s.willDisplay", id) })
	p.OnPresented(func(*Page) { log.add("%s.onDisplay", id) })
	p.OnDismissed(func(*Page) { log.add("%s.onDismiss", id) })
	p.OnSetUp(func(*Page) func() {
		log.add("%s.setUp", id)
		return func() { log.add("%s.tearDown", id) }
	})
	return p
}

// newTestManager wires a Manager to fresh fakes.
func newTestManager() (*Manager, *fakeSurface, *fakeFactory, *fakeScheduler, *fakeRecorder) {
	s := &fakeSurface{}
	f := &fakeFactory{}
	sch := &fakeScheduler{}
	rec := &fakeRecorder{}
	m := NewManager(s, f, WithScheduler(sch), WithRecorder(rec))
	return m, s, f, sch, rec
}
