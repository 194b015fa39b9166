package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alert is an error banner with an optional dismiss hint.
type Alert struct {
	title       string
	message     string
	theme       Theme
	dismissHint string
	width       int
}

// NewAlert creates an alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{message: message, theme: LightTheme()}
}

// WithTitle sets the alert title
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithTheme sets the theme the alert is drawn with.
func (a *Alert) WithTheme(theme Theme) *Alert {
	a.theme = theme
	return a
}

// WithDismissHint shows how to dismiss the alert, e.g. "x".
func (a *Alert) WithDismissHint(key string) *Alert {
	a.dismissHint = key
	return a
}

// WithWidth fixes the rendered width.
func (a *Alert) WithWidth(width int) *Alert {
	a.width = width
	return a
}

// View renders the alert
func (a *Alert) View() string {
	style := lipgloss.NewStyle().
		Foreground(a.theme.Palette.Danger).
		Background(a.theme.Palette.OnDanger).
		Border(lipgloss.ThickBorder()).
		BorderForeground(a.theme.Palette.Danger).
		Padding(0, 1)
	if a.width > 0 {
		style = style.Width(a.width)
	}

	var content []string
	if a.title != "" {
		content = append(content, lipgloss.NewStyle().Bold(true).Render(a.title))
	}
	if a.message != "" {
		content = append(content, a.message)
	}
	if a.dismissHint != "" {
		content = append(content, "["+a.dismissHint+"] dismiss")
	}

	return style.Render(strings.Join(content, "\n"))
}
