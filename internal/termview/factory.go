// Package termview renders card content for a terminal. Factory implements
// cards.ViewFactory on top of lipgloss, glamour and bubbles/viewport, and
// FitHeight is the single layout policy for fitting a card into a height.
package termview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bulletin/internal/appearance"
	"github.com/papapumpkin/bulletin/internal/cards"
)

// Frame padding inside the card border, in cells.
const (
	framePadV = 1
	framePadH = 2
)

var _ cards.ViewFactory = (*Factory)(nil)

// Factory builds terminal views styled by an appearance.Config.
type Factory struct {
	cfg    appearance.Config
	styles styles
}

// NewFactory returns a Factory for cfg. Empty fields in cfg fall back to
// appearance.Default.
func NewFactory(cfg appearance.Config) *Factory {
	full := appearance.Default().Merge(cfg)
	return &Factory{cfg: full, styles: newStyles(full)}
}

// SetAppearance restyles views built from now on. Views already built keep
// their styles.
func (f *Factory) SetAppearance(cfg appearance.Config) {
	f.cfg = appearance.Default().Merge(cfg)
	f.styles = newStyles(f.cfg)
}

// Appearance returns the effective appearance after defaults were applied.
func (f *Factory) Appearance() appearance.Config { return f.cfg }

// Frame returns the card border style for a card of the given outer width.
func (f *Factory) Frame(width int) lipgloss.Style {
	return f.styles.frame.Width(max(width-2, 0))
}

// ContentWidth returns the width available to views inside a card of the
// given outer width.
func (f *Factory) ContentWidth(width int) int {
	return max(width-2-2*framePadH, 1)
}

// FrameHeight returns the rows the frame itself takes: border and padding.
func (f *Factory) FrameHeight() int {
	return 2 + 2*framePadV
}

// TitleLabel builds the bold heading.
func (f *Factory) TitleLabel(text string) cards.View {
	return &Label{Text: text, style: f.styles.title}
}

// DescriptionLabel builds a body paragraph, rendered as markdown when the
// appearance asks for it.
func (f *Factory) DescriptionLabel(text string) cards.View {
	if f.cfg.Markdown {
		return newMarkdownLabel(text, f.cfg.GlamourStyle, f.styles.description)
	}
	return &Label{Text: text, style: f.styles.description}
}

// ActionButton builds the primary button.
func (f *Factory) ActionButton(title string) cards.Button {
	return newButton(title, cards.ButtonAction, f.styles.action, f.styles.actionFocus)
}

// AlternativeButton builds the secondary button.
func (f *Factory) AlternativeButton(title string) cards.Button {
	return newButton(title, cards.ButtonAlternative, f.styles.alternative, f.styles.alternativeFocus)
}

// GroupStack stacks views vertically. Compact appearances ignore spacing.
func (f *Factory) GroupStack(spacing int, views ...cards.View) cards.Container {
	if f.cfg.CompactDescription {
		spacing = 0
	}
	return &Stack{Spacing: spacing, Views: views}
}

// ScrollableContainer wraps view in a ScrollView. The view is unbounded until
// FitHeight assigns it a maximum height.
func (f *Factory) ScrollableContainer(view cards.View) cards.Container {
	return &ScrollView{child: view}
}
