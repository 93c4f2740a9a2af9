package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/bulletin/internal/cards"
	"github.com/papapumpkin/bulletin/internal/termview"
)

// Reveal animation: the card grows in revealFrames steps.
const (
	revealFrames   = 4
	revealInterval = 30 * time.Millisecond
)

var (
	_ cards.Surface   = (*Surface)(nil)
	_ cards.Scheduler = (*Surface)(nil)
)

// Surface is the modal card container drawn over the host view. It
// implements cards.Surface and cards.Scheduler; side effects that need the
// Bubble Tea runtime are queued as commands and collected with Drain.
type Surface struct {
	factory *termview.Factory

	views          []cards.View
	buttons        []*termview.ButtonView
	visible        bool
	closeVisible   bool
	outsideDismiss bool
	indicator      bool
	spinner        spinner.Model
	focus          int

	presents int // presentation generation
	reveal   int // frames shown so far; revealFrames means fully visible

	nextTimer uint64
	timers    map[uint64]func()
	cmds      []tea.Cmd

	// OnOutsideDismiss is called when the user presses the dismiss key while
	// outside dismissal is enabled. The host wires it to
	// Manager.NotifyUserRequestedDismiss.
	OnOutsideDismiss func() error
}

// NewSurface returns a hidden surface that builds its card with factory.
func NewSurface(factory *termview.Factory) *Surface {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleSpinner
	return &Surface{
		factory: factory,
		spinner: s,
		timers:  make(map[uint64]func()),
		reveal:  revealFrames,
	}
}

// Present replaces the card content. The indicator and button focus reset
// with every presentation.
func (s *Surface) Present(views []cards.View, animated bool) {
	s.views = views
	s.buttons = termview.Buttons(views)
	s.visible = true
	s.indicator = false
	s.presents++
	s.setFocus(0)

	if animated {
		s.reveal = 1
		s.queue(revealTick(s.presents))
	} else {
		s.reveal = revealFrames
	}
}

// Dismiss hides the card.
func (s *Surface) Dismiss(animated bool) {
	s.views = nil
	s.buttons = nil
	s.visible = false
	s.indicator = false
	s.presents++
}

// SetCloseButtonVisible toggles the close affordance.
func (s *Surface) SetCloseButtonVisible(visible bool) { s.closeVisible = visible }

// SetOutsideDismissEnabled toggles dismissal with the dismiss key.
func (s *Surface) SetOutsideDismissEnabled(enabled bool) { s.outsideDismiss = enabled }

// ShowIndicator starts the spinner.
func (s *Surface) ShowIndicator() {
	if s.indicator {
		return
	}
	s.indicator = true
	s.queue(s.spinner.Tick)
}

// HideIndicator stops the spinner. Pending spinner ticks are ignored.
func (s *Surface) HideIndicator() { s.indicator = false }

// After runs fn on the update goroutine once d has elapsed.
func (s *Surface) After(d time.Duration, fn func()) {
	s.nextTimer++
	id := s.nextTimer
	s.timers[id] = fn
	s.queue(tea.Tick(d, func(time.Time) tea.Msg { return MsgTimer{ID: id} }))
}

// Visible reports whether a card is on screen.
func (s *Surface) Visible() bool { return s.visible }

// CloseButtonVisible reports whether the close affordance is shown.
func (s *Surface) CloseButtonVisible() bool { return s.visible && s.closeVisible }

// OutsideDismissEnabled reports whether the dismiss key is honoured.
func (s *Surface) OutsideDismissEnabled() bool { return s.visible && s.outsideDismiss }

// IndicatorVisible reports whether the spinner is running.
func (s *Surface) IndicatorVisible() bool { return s.visible && s.indicator }

// Buttons returns the buttons on the current card.
func (s *Surface) Buttons() []*termview.ButtonView { return s.buttons }

// Focused returns the index of the focused button, or -1 without buttons.
func (s *Surface) Focused() int {
	if len(s.buttons) == 0 {
		return -1
	}
	return s.focus
}

// Scrollable reports whether the last render clipped the card body.
func (s *Surface) Scrollable() bool {
	for _, sv := range termview.ScrollViews(s.views) {
		if sv.Overflowing() {
			return true
		}
	}
	return false
}

// MoveFocus moves button focus by delta, wrapping around.
func (s *Surface) MoveFocus(delta int) {
	if n := len(s.buttons); n > 0 {
		s.setFocus(((s.focus+delta)%n + n) % n)
	}
}

// PressFocused presses the focused button and reports whether a handler ran.
func (s *Surface) PressFocused() bool {
	if len(s.buttons) == 0 {
		return false
	}
	return s.buttons[s.focus].Press()
}

// Scroll scrolls every clipped body by delta lines.
func (s *Surface) Scroll(delta int) {
	for _, sv := range termview.ScrollViews(s.views) {
		sv.ScrollBy(delta)
	}
}

// RequestOutsideDismiss forwards a dismiss key press when outside dismissal
// is enabled. It reports whether the request was forwarded.
func (s *Surface) RequestOutsideDismiss() (bool, error) {
	if !s.OutsideDismissEnabled() || s.OnOutsideDismiss == nil {
		return false, nil
	}
	return true, s.OnOutsideDismiss()
}

// Update handles the messages the surface queued commands for. It reports
// whether msg belonged to the surface.
func (s *Surface) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case MsgTimer:
		fn, ok := s.timers[msg.ID]
		if !ok {
			return true
		}
		delete(s.timers, msg.ID)
		fn()
		return true

	case MsgReveal:
		if msg.Present != s.presents || s.reveal >= revealFrames {
			return true
		}
		s.reveal++
		if s.reveal < revealFrames {
			s.queue(revealTick(s.presents))
		}
		return true

	case spinner.TickMsg:
		if !s.indicator {
			return true
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		s.queue(cmd)
		return true
	}
	return false
}

// Drain returns the commands queued since the last call.
func (s *Surface) Drain() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

func (s *Surface) queue(cmd tea.Cmd) {
	if cmd != nil {
		s.cmds = append(s.cmds, cmd)
	}
}

func (s *Surface) setFocus(i int) {
	s.focus = i
	for j, b := range s.buttons {
		b.SetFocused(j == i)
	}
}

func revealTick(present int) tea.Cmd {
	return tea.Tick(revealInterval, func(time.Time) tea.Msg { return MsgReveal{Present: present} })
}
