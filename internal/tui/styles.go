package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary    = lipgloss.Color("#00BFFF") // accent
	colorDanger     = lipgloss.Color("#FF5252") // errors
	colorMuted      = lipgloss.Color("#636363") // de-emphasized
	colorMutedLight = lipgloss.Color("#8C8C8C") // normal text
	colorSurfaceDim = lipgloss.Color("#181825") // footer background
)

// Card chrome.
var (
	styleCloseButton = lipgloss.NewStyle().
				Foreground(colorMutedLight).
				Bold(true)

	styleSpinner = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleBackdrop = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBreadcrumb = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)

// Footer styles.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleStatusInfo = lipgloss.NewStyle().
			Foreground(colorMutedLight).
			Italic(true)

	styleStatusError = lipgloss.NewStyle().
				Foreground(colorDanger).
				Bold(true)
)
