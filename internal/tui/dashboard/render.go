package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/countrydash/internal/components"
	"github.com/alexisbeaulieu97/countrydash/internal/country"
	"github.com/alexisbeaulieu97/countrydash/internal/dashboard"
)

// RenderOptions carries the layout budget for a renderer.
type RenderOptions struct {
	Width  int
	Height int
	// Cursor is the index of the selected country; -1 selects nothing.
	Cursor int
}

// Renderer draws a list of countries. Every variant receives the same
// filtered list and dark flag.
type Renderer interface {
	Render(countries []country.Country, dark bool, opts RenderOptions) string
}

// RendererFor returns the default renderer for a view mode.
func RendererFor(mode dashboard.ViewMode) Renderer {
	if mode == dashboard.ViewTable {
		return TableRenderer{}
	}
	return GridRenderer{}
}

const emptyMessage = "No countries match the selected region."

func renderEmpty(theme components.Theme, width int) string {
	style := theme.Subtle().
		Italic(true).
		Align(lipgloss.Center).
		PaddingTop(2).
		PaddingBottom(2)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(emptyMessage)
}

// GridRenderer lays countries out as cards in as many columns as fit.
type GridRenderer struct {
	// CardWidth overrides components.DefaultCardWidth.
	CardWidth int
}

// Render implements Renderer.
func (g GridRenderer) Render(countries []country.Country, dark bool, opts RenderOptions) string {
	theme := components.ThemeFor(dark)
	if len(countries) == 0 {
		return renderEmpty(theme, opts.Width)
	}

	cardWidth := g.CardWidth
	if cardWidth <= 0 {
		cardWidth = components.DefaultCardWidth
	}
	columns := gridColumns(opts.Width, cardWidth)

	var rows []string
	for start := 0; start < len(countries); start += columns {
		end := start + columns
		if end > len(countries) {
			end = len(countries)
		}

		cards := make([]string, 0, (end-start)*2)
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, " ")
			}
			cards = append(cards, countryCard(countries[i], theme, cardWidth, i == opts.Cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return strings.Join(visibleRows(rows, opts, columns), "\n")
}

// gridColumns returns how many cards fit in width, at least one.
func gridColumns(width, cardWidth int) int {
	if width <= 0 {
		return 1
	}
	columns := (width + 1) / (cardWidth + 1)
	if columns < 1 {
		return 1
	}
	return columns
}

// visibleRows scrolls the row window so the cursor's row stays on screen.
func visibleRows(rows []string, opts RenderOptions, columns int) []string {
	if opts.Height <= 0 || len(rows) == 0 {
		return rows
	}

	cursorRow := 0
	if opts.Cursor > 0 {
		cursorRow = opts.Cursor / columns
	}
	if cursorRow >= len(rows) {
		cursorRow = len(rows) - 1
	}

	rowHeight := 1
	for _, row := range rows {
		if h := lipgloss.Height(row); h > rowHeight {
			rowHeight = h
		}
	}
	budget := opts.Height / rowHeight
	if budget < 1 {
		// Not even one row fits, so show the top of the cursor's row.
		lines := strings.Split(rows[cursorRow], "\n")
		return []string{strings.Join(lines[:opts.Height], "\n")}
	}
	if budget >= len(rows) {
		return rows
	}

	start := 0
	if cursorRow >= budget {
		start = cursorRow - budget + 1
	}
	return rows[start : start+budget]
}

func countryCard(c country.Country, theme components.Theme, width int, selected bool) string {
	subtitle := c.Region
	if c.Subregion != "" {
		subtitle = c.Subregion
	}

	return components.NewCard(components.CardData{
		Title:    c.Name,
		Subtitle: subtitle,
		Icon:     c.Code,
		Metadata: map[string]string{
			"Capital":    c.DisplayCapital(),
			"Population": country.FormatPopulation(c.Population),
			"Region":     c.Region,
		},
		Footer: "Flag: " + c.DisplayFlag(),
	}).WithTheme(theme).WithWidth(width).WithSelected(selected).View()
}

// TableRenderer draws countries as rows of a bubbles table.
type TableRenderer struct{}

// Render implements Renderer.
func (TableRenderer) Render(countries []country.Country, dark bool, opts RenderOptions) string {
	theme := components.ThemeFor(dark)
	if len(countries) == 0 {
		return renderEmpty(theme, opts.Width)
	}

	rows := make([]table.Row, 0, len(countries))
	for _, c := range countries {
		rows = append(rows, table.Row{
			c.Name,
			c.DisplayCapital(),
			c.Region,
			country.FormatPopulation(c.Population),
		})
	}

	// The header line and its bottom border count towards the table height.
	const headerLines = 2
	height := len(rows) + headerLines
	if opts.Height > 0 && opts.Height < height {
		height = opts.Height
		if height <= headerLines {
			height = headerLines + 1
		}
	}

	t := table.New(
		table.WithColumns(tableColumns(opts.Width)),
		table.WithRows(rows),
		table.WithStyles(tableStyles(theme)),
		table.WithHeight(height),
		table.WithFocused(opts.Cursor >= 0),
	)
	if opts.Cursor > 0 {
		t.SetCursor(opts.Cursor)
	}

	return t.View()
}

// tableColumns splits width between the four columns, keeping a floor per column.
func tableColumns(width int) []table.Column {
	const cellPadding = 2
	available := width - 4*cellPadding
	if available < 60 {
		available = 60
	}

	name := available * 30 / 100
	capital := available * 25 / 100
	region := available * 20 / 100
	population := available - name - capital - region

	return []table.Column{
		{Title: "Name", Width: name},
		{Title: "Capital", Width: capital},
		{Title: "Region", Width: region},
		{Title: "Population", Width: population},
	}
}

func tableStyles(theme components.Theme) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Palette.Border).
		BorderBottom(true).
		Bold(true).
		Foreground(theme.Palette.Primary)
	s.Cell = s.Cell.Foreground(theme.Palette.Text)
	s.Selected = s.Selected.
		Foreground(theme.Palette.Accent).
		Bold(true)
	return s
}
