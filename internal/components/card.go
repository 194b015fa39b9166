package components

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// DefaultCardWidth is the outer width of a card when none is set.
const DefaultCardWidth = 30

// CardData represents the content of a card.
type CardData struct {
	// Title is the main heading displayed in the card
	Title string
	// Subtitle is shown under the title in the muted colour
	Subtitle string
	// Icon is an optional marker displayed before the title
	Icon string
	// Metadata contains key-value pairs rendered in key order
	Metadata map[string]string
	// Footer is a single muted line, truncated to the card width
	Footer string
}

// Card is a bordered block of text drawn with a Theme.
type Card struct {
	data     CardData
	theme    Theme
	width    int
	selected bool
}

// NewCard creates a card using the light theme and default width.
func NewCard(data CardData) *Card {
	return &Card{
		data:  data,
		theme: LightTheme(),
		width: DefaultCardWidth,
	}
}

// WithTheme sets the theme the card is drawn with.
func (c *Card) WithTheme(theme Theme) *Card {
	c.theme = theme
	return c
}

// WithWidth sets the outer card width. Non-positive widths are ignored.
func (c *Card) WithWidth(width int) *Card {
	if width > 0 {
		c.width = width
	}
	return c
}

// WithSelected highlights the card border.
func (c *Card) WithSelected(selected bool) *Card {
	c.selected = selected
	return c
}

// Width returns the outer card width.
func (c *Card) Width() int {
	return c.width
}

// View renders the card.
func (c *Card) View() string {
	var content []string

	if c.data.Title != "" {
		content = append(content, c.renderHeader())
	}

	if c.data.Subtitle != "" {
		content = append(content, c.theme.Subtle().Render(c.wrapText(c.data.Subtitle)))
	}

	if len(c.data.Metadata) > 0 {
		content = append(content, "")
		keys := make([]string, 0, len(c.data.Metadata))
		for k := range c.data.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			line := fmt.Sprintf("%s: %s", key, c.data.Metadata[key])
			content = append(content, c.theme.Base().Render(c.wrapText(line)))
		}
	}

	if c.data.Footer != "" {
		content = append(content, c.theme.Subtle().Render(truncate(c.data.Footer, c.textWidth())))
	}

	frame := c.theme.Frame().Width(c.innerWidth())
	if c.selected {
		frame = frame.BorderForeground(c.theme.Palette.Accent)
	}
	return frame.Render(strings.Join(content, "\n"))
}

// innerWidth is the width lipgloss sizes the frame to: the outer width
// without the border, padding included.
func (c *Card) innerWidth() int {
	w := c.width - horizontalBorderWidth(c.theme.Frame())
	if w < 1 {
		return 1
	}
	return w
}

func (c *Card) renderHeader() string {
	var header strings.Builder

	if c.data.Icon != "" {
		header.WriteString(c.theme.Subtle().Render(c.data.Icon + " "))
	}

	title := c.theme.Title()
	if c.selected {
		title = c.theme.Highlight()
	}
	header.WriteString(title.Render(truncate(c.data.Title, c.textWidth())))

	return header.String()
}

// textWidth is the space available for text inside border and padding.
func (c *Card) textWidth() int {
	frame := c.theme.Frame()
	return c.width - horizontalBorderWidth(frame) - frame.GetHorizontalPadding()
}

// wrapText wraps text to fit within the card width, breaking words longer
// than a full line.
func (c *Card) wrapText(text string) string {
	maxWidth := c.textWidth()
	if maxWidth <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range words {
		if utf8.RuneCountInString(word) > maxWidth {
			wordRunes := []rune(word)
			if currentLine != "" {
				lines = append(lines, currentLine)
				currentLine = ""
			}
			for len(wordRunes) > maxWidth {
				lines = append(lines, string(wordRunes[:maxWidth]))
				wordRunes = wordRunes[maxWidth:]
			}
			if len(wordRunes) > 0 {
				currentLine = string(wordRunes)
			}
			continue
		}

		testLine := currentLine
		if currentLine != "" {
			testLine += " "
		}
		testLine += word

		if utf8.RuneCountInString(testLine) <= maxWidth {
			currentLine = testLine
		} else {
			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n")
}

func truncate(text string, width int) string {
	if width <= 0 || utf8.RuneCountInString(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	runes := []rune(text)
	return string(runes[:width-1]) + "…"
}

// horizontalBorderWidth sums left and right border sizes.
func horizontalBorderWidth(style lipgloss.Style) int {
	width := style.GetBorderLeftSize() + style.GetBorderRightSize()
	if width < 0 {
		return 0
	}
	return width
}
