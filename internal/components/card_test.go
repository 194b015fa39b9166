package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	data := CardData{
		Title:    "France",
		Subtitle: "Europe",
		Icon:     "FRA",
	}

	card := NewCard(data)

	require.NotNil(t, card)
	assert.Equal(t, data, card.data)
	assert.Equal(t, DefaultCardWidth, card.Width())
	assert.Equal(t, LightTheme(), card.theme)
}

func TestCardFluentSetters(t *testing.T) {
	card := NewCard(CardData{Title: "Japan"})

	assert.Same(t, card, card.WithTheme(DarkTheme()))
	assert.Same(t, card, card.WithWidth(40))
	assert.Same(t, card, card.WithSelected(true))

	assert.Equal(t, DarkTheme(), card.theme)
	assert.Equal(t, 40, card.Width())
	assert.True(t, card.selected)

	card.WithWidth(0)
	assert.Equal(t, 40, card.Width(), "non-positive widths are ignored")
}

func TestCardViewContainsContent(t *testing.T) {
	card := NewCard(CardData{
		Title:    "Germany",
		Subtitle: "Western Europe",
		Metadata: map[string]string{
			"Population": "83,240,525",
			"Capital":    "Berlin",
		},
	})

	view := card.View()
	assert.Contains(t, view, "Germany")
	assert.Contains(t, view, "Western Europe")
	assert.Contains(t, view, "Capital: Berlin")
	assert.Contains(t, view, "Population: 83,240,525")
	assert.Less(t, strings.Index(view, "Capital"), strings.Index(view, "Population"), "metadata is rendered in key order")
}

func TestCardViewRespectsWidth(t *testing.T) {
	card := NewCard(CardData{Title: "Bosnia and Herzegovina", Subtitle: "Southeast Europe"}).WithWidth(20)

	view := card.View()
	assert.Equal(t, 20, lipgloss.Width(view))
	assert.Contains(t, view, "…")
}

func TestCardWrapText(t *testing.T) {
	card := NewCard(CardData{}).WithWidth(14)

	wrapped := card.wrapText("aaaa bbbb cccc")
	assert.Equal(t, "aaaa bbbb\ncccc", wrapped)

	long := card.wrapText("abcdefghijklmnopqrst")
	assert.Equal(t, "abcdefghij\nklmnopqrst", long)

	assert.Equal(t, "", card.wrapText(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "…", truncate("abcdef", 1))
	assert.Equal(t, "abcdef", truncate("abcdef", 0))
}

func TestButtonView(t *testing.T) {
	idle := NewButton("d", "Dark mode").View()
	active := NewButton("d", "Dark mode").WithActive(true).View()

	assert.Contains(t, idle, "[d]")
	assert.Contains(t, idle, "Dark mode")
	assert.Equal(t, lipgloss.Width(idle), lipgloss.Width(active))
}

func TestButtonGroupView(t *testing.T) {
	assert.Equal(t, "", NewButtonGroup().View())

	group := NewButtonGroup(NewButton("d", "Dark"), NewButton("v", "View"))
	view := group.View()
	assert.Contains(t, view, "[d] Dark")
	assert.Contains(t, view, "[v] View")

	one := lipgloss.Width(NewButton("d", "Dark").View())
	two := lipgloss.Width(NewButton("v", "View").View())
	assert.Equal(t, one+two+1, lipgloss.Width(view))
}

func TestAlertView(t *testing.T) {
	view := NewAlert("dataset missing").WithTitle("Error").WithDismissHint("x").WithTheme(DarkTheme()).View()

	assert.Contains(t, view, "Error")
	assert.Contains(t, view, "dataset missing")
	assert.Contains(t, view, "[x] dismiss")
}

func TestCardFooterIsTruncatedToOneLine(t *testing.T) {
	card := NewCard(CardData{
		Title:  "France",
		Footer: "Flag: https://flagcdn.com/w320/fr.png?variant=extra-long",
	}).WithWidth(20)

	withFooter := lipgloss.Height(card.View())
	withoutFooter := lipgloss.Height(NewCard(CardData{Title: "France"}).WithWidth(20).View())

	assert.Equal(t, withoutFooter+1, withFooter)
	assert.Contains(t, card.View(), "…")
	assert.Contains(t, card.View(), "Flag: ")
}
