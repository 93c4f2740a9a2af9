package termview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/papapumpkin/bulletin/internal/cards"
)

// focusMarker is drawn in front of the focused button.
const focusMarker = "▸ "

// ButtonView is a pressable button. Focus is owned by the surface; the card
// content only binds and unbinds the handler.
type ButtonView struct {
	Title   string
	kind    cards.ButtonKind
	handler func()
	focused bool
	normal  lipgloss.Style
	focus   lipgloss.Style
}

func newButton(title string, kind cards.ButtonKind, normal, focus lipgloss.Style) *ButtonView {
	return &ButtonView{Title: title, kind: kind, normal: normal, focus: focus}
}

// Kind reports the button's role.
func (b *ButtonView) Kind() cards.ButtonKind { return b.kind }

// Bind installs the press handler.
func (b *ButtonView) Bind(fn func()) { b.handler = fn }

// Unbind removes the press handler.
func (b *ButtonView) Unbind() { b.handler = nil }

// Bound reports whether a handler is installed.
func (b *ButtonView) Bound() bool { return b.handler != nil }

// Press runs the handler, if any.
func (b *ButtonView) Press() bool {
	if b.handler == nil {
		return false
	}
	b.handler()
	return true
}

// SetFocused marks the button as the keyboard target.
func (b *ButtonView) SetFocused(focused bool) { b.focused = focused }

// Focused reports whether the button is the keyboard target.
func (b *ButtonView) Focused() bool { return b.focused }

// Render draws the button on one line, truncating the title to fit width.
func (b *ButtonView) Render(width int) string {
	marker := "  "
	style := b.normal
	if b.focused {
		marker = focusMarker
		style = b.focus
	}
	room := width - runewidth.StringWidth(marker) - style.GetHorizontalFrameSize()
	title := runewidth.Truncate(b.Title, max(room, 1), "…")
	return marker + style.Render(title)
}
