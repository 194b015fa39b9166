// Package components provides the lipgloss building blocks the dashboard is
// drawn with. Every component takes its Theme explicitly; there is no
// process-wide active theme.
package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the semantic colour slots used by components.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Danger     lipgloss.Color
	OnDanger   lipgloss.Color
}

// Theme is a named palette plus the border used for framed components.
type Theme struct {
	Name    string
	Dark    bool
	Palette Palette
	Border  lipgloss.Border
}

// LightTheme returns the default light presentation.
func LightTheme() Theme {
	return Theme{
		Name: "light",
		Palette: Palette{
			Background: lipgloss.Color("#f8fafc"),
			Surface:    lipgloss.Color("#ffffff"),
			Text:       lipgloss.Color("#111827"),
			Muted:      lipgloss.Color("#6b7280"),
			Primary:    lipgloss.Color("#2563eb"),
			Accent:     lipgloss.Color("#db2777"),
			Border:     lipgloss.Color("#cbd5e1"),
			Danger:     lipgloss.Color("#dc2626"),
			OnDanger:   lipgloss.Color("#fef2f2"),
		},
		Border: lipgloss.RoundedBorder(),
	}
}

// DarkTheme returns the dark presentation.
func DarkTheme() Theme {
	return Theme{
		Name: "dark",
		Dark: true,
		Palette: Palette{
			Background: lipgloss.Color("#0f172a"),
			Surface:    lipgloss.Color("#1e293b"),
			Text:       lipgloss.Color("#e5e7eb"),
			Muted:      lipgloss.Color("#94a3b8"),
			Primary:    lipgloss.Color("#60a5fa"),
			Accent:     lipgloss.Color("#f472b6"),
			Border:     lipgloss.Color("#334155"),
			Danger:     lipgloss.Color("#f87171"),
			OnDanger:   lipgloss.Color("#450a0a"),
		},
		Border: lipgloss.RoundedBorder(),
	}
}

// ThemeFor returns DarkTheme when dark is set, LightTheme otherwise.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

// Base is the plain text style on the theme background.
func (t Theme) Base() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Palette.Text)
}

// Title is bold primary text.
func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Palette.Primary)
}

// Subtle renders secondary information.
func (t Theme) Subtle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Palette.Muted)
}

// Highlight renders the selected element.
func (t Theme) Highlight() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Palette.Accent)
}

// Frame is a bordered surface with one cell of horizontal padding.
func (t Theme) Frame() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.Palette.Border).
		Background(t.Palette.Surface).
		Foreground(t.Palette.Text).
		Padding(0, 1)
}
