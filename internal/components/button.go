package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Button is a labelled key hint, e.g. "[d] Dark mode".
type Button struct {
	key    string
	label  string
	theme  Theme
	active bool
}

// NewButton creates a button for key with the given label.
func NewButton(key, label string) *Button {
	return &Button{key: key, label: label, theme: LightTheme()}
}

// WithTheme sets the theme the button is drawn with.
func (b *Button) WithTheme(theme Theme) *Button {
	b.theme = theme
	return b
}

// WithActive marks the button as showing an engaged state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// View renders the button.
func (b *Button) View() string {
	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.NormalBorder()).
		BorderForeground(b.theme.Palette.Border).
		Foreground(b.theme.Palette.Text)

	if b.active {
		style = style.
			BorderForeground(b.theme.Palette.Primary).
			Foreground(b.theme.Palette.Primary).
			Bold(true)
	}

	keyHint := b.theme.Highlight().Render("[" + b.key + "]")
	return style.Render(keyHint + " " + b.label)
}

// ButtonGroup is a horizontal row of buttons.
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a new button group with one cell between buttons.
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{
		buttons: buttons,
		spacing: 1,
	}
}

// WithSpacing sets the spacing between buttons
func (bg *ButtonGroup) WithSpacing(spacing int) *ButtonGroup {
	bg.spacing = spacing
	return bg
}

// View renders the button group
func (bg *ButtonGroup) View() string {
	if len(bg.buttons) == 0 {
		return ""
	}

	parts := make([]string, 0, len(bg.buttons)*2)
	spacer := strings.Repeat(" ", bg.spacing)
	for i, button := range bg.buttons {
		if i > 0 && bg.spacing > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, button.View())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
