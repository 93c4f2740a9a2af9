package termview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bulletin/internal/appearance"
)

// styles are derived from one appearance.Config.
type styles struct {
	frame            lipgloss.Style
	title            lipgloss.Style
	description      lipgloss.Style
	action           lipgloss.Style
	actionFocus      lipgloss.Style
	alternative      lipgloss.Style
	alternativeFocus lipgloss.Style
}

func newStyles(cfg appearance.Config) styles {
	tint := color(cfg.TintColor)

	action := lipgloss.NewStyle().
		Foreground(color(cfg.ActionTitleColor)).
		Background(color(cfg.ActionButtonColor)).
		Bold(true).
		Padding(0, 1)

	alternative := lipgloss.NewStyle().
		Foreground(color(cfg.AlternativeTitleColor)).
		Padding(0, 1)

	return styles{
		frame: lipgloss.NewStyle().
			Border(border(cfg.Border)).
			BorderForeground(tint).
			Padding(framePadV, framePadH),
		title: lipgloss.NewStyle().
			Foreground(color(cfg.TitleColor)).
			Bold(true),
		description: lipgloss.NewStyle().
			Foreground(color(cfg.DescriptionColor)),
		action:           action,
		actionFocus:      action.Underline(true),
		alternative:      alternative,
		alternativeFocus: alternative.Foreground(tint).Underline(true),
	}
}

// color maps an appearance color string to a lipgloss color. An empty string
// means the terminal default.
func color(s string) lipgloss.TerminalColor {
	if s == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(s)
}

func border(name string) lipgloss.Border {
	switch name {
	case appearance.BorderDouble:
		return lipgloss.DoubleBorder()
	case appearance.BorderNormal:
		return lipgloss.NormalBorder()
	case appearance.BorderThick:
		return lipgloss.ThickBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}
