package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bulletin/internal/appearance"
	"github.com/papapumpkin/bulletin/internal/cards"
	"github.com/papapumpkin/bulletin/internal/termview"
)

// Options configure a Host.
type Options struct {
	Appearance appearance.Config
	// CardWidth is the preferred outer card width; it shrinks on narrow
	// terminals.
	CardWidth int
	Animated  bool
	Recorder  cards.Recorder
	// QuitOnDismiss ends the program once the flow is dismissed.
	QuitOnDismiss bool
	// Title is shown at the start of the breadcrumb line.
	Title string
}

// Host is the Bubble Tea model that owns a card flow: it presents the root
// page on start, turns key presses into Manager operations and draws the
// surface centered over a backdrop.
type Host struct {
	manager *cards.Manager
	surface *Surface
	factory *termview.Factory
	keys    KeyMap
	root    *cards.Page
	opts    Options

	width, height int
	status        string
	statusErr     bool
	quitting      bool
}

// NewHost returns a Host that presents root when the program starts.
func NewHost(root *cards.Page, opts Options) *Host {
	if opts.CardWidth <= 0 {
		opts.CardWidth = 60
	}
	f := termview.NewFactory(opts.Appearance)
	s := NewSurface(f)

	var mopts []cards.Option
	if opts.Recorder != nil {
		mopts = append(mopts, cards.WithRecorder(opts.Recorder))
	}
	m := cards.NewManager(s, f, mopts...)
	s.OnOutsideDismiss = m.NotifyUserRequestedDismiss

	return &Host{
		manager: m,
		surface: s,
		factory: f,
		keys:    DefaultKeyMap(),
		root:    root,
		opts:    opts,
	}
}

// Manager returns the navigation state machine driven by the host.
func (h *Host) Manager() *cards.Manager { return h.manager }

// Surface returns the card surface.
func (h *Host) Surface() *Surface { return h.surface }

// Status returns the transient footer message.
func (h *Host) Status() string { return h.status }

// Init presents the root page.
func (h *Host) Init() tea.Cmd {
	h.report(h.manager.Present(h.root, h.opts.Animated))
	return h.after()
}

// Update handles key presses, resizes, reloads and the surface's own
// messages.
func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height

	case tea.KeyMsg:
		return h, h.handleKey(msg)

	case MsgReplace:
		h.replace(msg)

	case MsgStatus:
		h.status, h.statusErr = msg.Text, msg.Error

	default:
		h.surface.Update(msg)
	}
	return h, h.after()
}

func (h *Host) handleKey(msg tea.KeyMsg) tea.Cmd {
	h.status, h.statusErr = "", false

	switch {
	case key.Matches(msg, h.keys.Quit):
		if h.manager.State() != cards.StateIdle {
			h.report(h.manager.ForceDismiss(false))
		}
		h.quitting = true
		return tea.Batch(h.surface.Drain(), tea.Quit)

	case key.Matches(msg, h.keys.Close):
		if h.surface.CloseButtonVisible() {
			h.report(h.manager.ForceDismiss(h.opts.Animated))
		}

	case key.Matches(msg, h.keys.Dismiss):
		forwarded, err := h.surface.RequestOutsideDismiss()
		if !forwarded && h.surface.Visible() {
			err = cards.ErrNotDismissable
		}
		h.report(err)

	case key.Matches(msg, h.keys.Next):
		h.surface.MoveFocus(1)

	case key.Matches(msg, h.keys.Prev):
		h.surface.MoveFocus(-1)

	case key.Matches(msg, h.keys.Press):
		h.surface.PressFocused()

	case key.Matches(msg, h.keys.Up):
		h.surface.Scroll(-1)

	case key.Matches(msg, h.keys.Down):
		h.surface.Scroll(1)

	case key.Matches(msg, h.keys.Back):
		h.report(h.manager.Pop())

	case key.Matches(msg, h.keys.Root):
		h.report(h.manager.PopToRoot())
	}
	return h.after()
}

// replace force-dismisses the running flow and presents the new root.
func (h *Host) replace(msg MsgReplace) {
	if msg.Root == nil {
		return
	}
	if msg.Appearance != nil {
		h.factory.SetAppearance(*msg.Appearance)
	}
	if h.manager.State() != cards.StateIdle {
		h.report(h.manager.ForceDismiss(false))
	}
	h.root = msg.Root
	h.report(h.manager.Present(h.root, h.opts.Animated))
	if !h.statusErr {
		h.status = "deck reloaded"
	}
}

// after collects the surface's queued commands and quits once the flow is
// over when the host was asked to.
func (h *Host) after() tea.Cmd {
	cmd := h.surface.Drain()
	if h.opts.QuitOnDismiss && h.manager.State() == cards.StateIdle && !h.quitting {
		h.quitting = true
		return tea.Batch(cmd, tea.Quit)
	}
	return cmd
}

// report turns a refused operation into a footer message.
func (h *Host) report(err error) {
	switch {
	case err == nil, errors.Is(err, cards.ErrQueued):
		return
	case errors.Is(err, cards.ErrNotDismissable):
		h.status = "this card can't be dismissed"
	case errors.Is(err, cards.ErrEmptyBackStack):
		h.status = "already at the first card"
	case errors.Is(err, cards.ErrNoNextPage):
		h.status = "no next card"
	default:
		h.status = err.Error()
	}
	h.statusErr = true
}

// View draws the breadcrumb, the centered card and the footer.
func (h *Host) View() string {
	if h.quitting {
		return ""
	}
	if h.width < MinWidth || h.height < MinHeight {
		return styleBackdrop.Render("terminal too small")
	}

	footerHeight := 2
	if h.status != "" {
		footerHeight++
	}
	areaHeight := max(h.height-footerHeight-1, 1)

	card := h.surface.View(cardWidth(h.opts.CardWidth, h.width), areaHeight)
	if card == "" {
		card = styleBackdrop.Render("no card on screen · ctrl+c quits")
	}
	body := lipgloss.NewStyle().
		Height(areaHeight).
		MaxHeight(areaHeight).
		Render(centerOverlay(card, h.width, areaHeight))

	footer := Footer{
		Width:       h.width,
		Bindings:    FooterBindings(h.keys, h.surface, h.manager.Depth() > 0),
		Status:      h.status,
		StatusError: h.statusErr,
	}
	return h.breadcrumb() + "\n" + body + "\n" + footer.View()
}

// breadcrumb renders the title followed by the ids of the pages on the
// back-stack and the current page.
func (h *Host) breadcrumb() string {
	parts := make([]string, 0, h.manager.Depth()+2)
	if h.opts.Title != "" {
		parts = append(parts, h.opts.Title)
	}
	for _, p := range h.manager.BackStack() {
		parts = append(parts, p.ID)
	}
	if cur := h.manager.Current(); cur != nil {
		parts = append(parts, cur.ID)
	}
	return styleBreadcrumb.MaxWidth(h.width).Render(strings.Join(parts, " › "))
}
