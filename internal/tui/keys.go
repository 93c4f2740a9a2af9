package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the card host.
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Press   key.Binding
	Up      key.Binding
	Down    key.Binding
	Back    key.Binding
	Root    key.Binding
	Dismiss key.Binding
	Close   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next button"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev button"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "pgdown"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "backspace"),
			key.WithHelp("b", "back"),
		),
		Root: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first card"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// FooterBindings returns the hints shown under the card. Bindings whose
// affordance is unavailable on the current card are disabled.
func FooterBindings(km KeyMap, s *Surface, canGoBack bool) []key.Binding {
	km.Dismiss.SetEnabled(s.OutsideDismissEnabled())
	km.Close.SetEnabled(s.CloseButtonVisible())
	km.Back.SetEnabled(canGoBack)
	km.Root.SetEnabled(canGoBack)
	km.Up.SetEnabled(s.Scrollable())
	km.Down.SetEnabled(s.Scrollable())
	km.Next.SetEnabled(len(s.Buttons()) > 1)
	km.Press.SetEnabled(len(s.Buttons()) > 0)
	return []key.Binding{km.Next, km.Press, km.Up, km.Back, km.Root, km.Dismiss, km.Close, km.Quit}
}
