package dashboard

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/countrydash/internal/components"
)

// styles is the set of chrome styles derived from the active theme.
type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	summary lipgloss.Style
	footer  lipgloss.Style
	helpBox lipgloss.Style
}

func newStyles(theme components.Theme, width int) styles {
	s := styles{
		title: theme.Title().
			PaddingRight(2),

		header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(theme.Palette.Border).
			MarginBottom(1),

		summary: theme.Subtle(),

		footer: theme.Subtle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(theme.Palette.Border).
			MarginTop(1),

		helpBox: theme.Frame().
			BorderForeground(theme.Palette.Primary).
			Padding(1, 3),
	}

	if width > 2 {
		s.header = s.header.Width(width - 2)
		s.footer = s.footer.Width(width - 2)
	}
	return s
}

// helpStyles colours the bubbles help component for theme.
func helpStyles(theme components.Theme) help.Styles {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Palette.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.Palette.Muted)
	sepStyle := lipgloss.NewStyle().Foreground(theme.Palette.Border)

	return help.Styles{
		Ellipsis:       sepStyle,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
}
