package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Footer renders context-sensitive keybinding hints and an optional status
// line above them.
type Footer struct {
	Width       int
	Bindings    []key.Binding
	Status      string
	StatusError bool
}

// View renders the footer. In compact mode (narrow terminals), shows only
// key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < CompactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		var part string
		if compact {
			part = styleFooterKey.Render(help.Key)
		} else {
			part = styleFooterKey.Render(help.Key) + styleFooterSep.Render(":") + styleFooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := styleFooterSep.Render("  ")
	if compact {
		sep = styleFooterSep.Render(" ")
	}
	line := strings.Join(parts, sep)

	if f.Status != "" {
		style := styleStatusInfo
		if f.StatusError {
			style = styleStatusError
		}
		line = style.Render(f.Status) + "\n" + line
	}
	return styleFooter.Width(f.Width).Render(line)
}
