package termview

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Label is a wrapped block of styled text.
type Label struct {
	Text  string
	style lipgloss.Style
}

// Render wraps the text to width.
func (l *Label) Render(width int) string {
	return l.style.Width(width).Render(l.Text)
}

// MarkdownLabel renders its source through glamour. If glamour fails the
// source is shown as a plain label.
type MarkdownLabel struct {
	Source    string
	style     string
	fallback  lipgloss.Style
	renderer  *glamour.TermRenderer
	wrapWidth int
}

func newMarkdownLabel(source, style string, fallback lipgloss.Style) *MarkdownLabel {
	if style == "" {
		style = "dark"
	}
	return &MarkdownLabel{Source: source, style: style, fallback: fallback}
}

// Render renders the markdown wrapped to width. The glamour renderer is
// rebuilt only when the width changes.
func (m *MarkdownLabel) Render(width int) string {
	if m.renderer == nil || m.wrapWidth != width {
		r, err := glamour.NewTermRenderer(m.styleOption(), glamour.WithWordWrap(width))
		if err != nil {
			return m.plain(width)
		}
		m.renderer, m.wrapWidth = r, width
	}
	out, err := m.renderer.Render(m.Source)
	if err != nil {
		return m.plain(width)
	}
	return strings.Trim(out, "\n")
}

func (m *MarkdownLabel) styleOption() glamour.TermRendererOption {
	if m.style == "auto" {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStandardStyle(m.style)
}

func (m *MarkdownLabel) plain(width int) string {
	return m.fallback.Width(width).Render(m.Source)
}
