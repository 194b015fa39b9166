package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists every binding the dashboard reacts to. It satisfies help.KeyMap.
type keyMap struct {
	DarkMode   key.Binding
	RegionNext key.Binding
	RegionPrev key.Binding
	View       key.Binding
	Up         key.Binding
	Down       key.Binding
	Reload     key.Binding
	Help       key.Binding
	Dismiss    key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		DarkMode: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark mode"),
		),
		RegionNext: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab", "next region"),
		),
		RegionPrev: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("shift+tab", "prev region"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "grid/table"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "left", "h"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "right", "l"),
			key.WithHelp("↓/j", "down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload data"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x", "dismiss error"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.DarkMode, k.RegionNext, k.View, k.Help, k.Quit}
}

// FullHelp is shown in the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.DarkMode, k.RegionNext, k.RegionPrev, k.View},
		{k.Up, k.Down, k.Reload},
		{k.Help, k.Dismiss, k.Quit},
	}
}
