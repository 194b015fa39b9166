package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/countrydash/internal/components"
	"github.com/alexisbeaulieu97/countrydash/internal/country"
	"github.com/alexisbeaulieu97/countrydash/internal/dashboard"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	theme := components.ThemeFor(m.state.Theme().IsDark())
	st := newStyles(theme, m.width)

	if m.showHelp {
		return m.renderHelpView(theme, st)
	}

	header := m.renderHeader(theme, st)
	footer := m.renderFooter(theme, st)
	banner := ""
	if m.showError {
		banner = m.renderErrorBanner(theme)
	}

	// The body gets whatever the chrome leaves so the header never scrolls off.
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if banner != "" {
		bodyHeight -= lipgloss.Height(banner)
	}
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var content strings.Builder

	content.WriteString(header)
	content.WriteString("\n")

	if banner != "" {
		content.WriteString(banner)
		content.WriteString("\n")
	}

	content.WriteString(m.renderBody(bodyHeight))
	content.WriteString("\n")

	content.WriteString(footer)

	return theme.Base().Render(content.String())
}

// renderHeader renders the title, the control toolbar and the summary line
func (m Model) renderHeader(theme components.Theme, st styles) string {
	title := st.title.Render("🌍 Countries Dashboard")
	themeLabel := theme.Subtle().Render(m.state.Theme().String() + " theme")
	titleLine := lipgloss.JoinHorizontal(lipgloss.Top, title, themeLabel)

	all := m.state.Countries()
	visible := m.Visible()
	summary := fmt.Sprintf("Showing %d of %d countries  •  Region: %s", len(visible), len(all), m.state.Region())
	if m.source != "" {
		summary += "  •  Source: " + m.source
	}

	headerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		titleLine,
		m.renderToolbar(theme),
		st.summary.Render(summary),
	)

	return st.header.Render(headerContent)
}

// renderToolbar draws one button per control
func (m Model) renderToolbar(theme components.Theme) string {
	buttons := make([]*components.Button, 0, 3)
	for _, c := range m.Controls() {
		label := c.Label
		active := false
		switch c.ID {
		case ControlDarkModeToggle:
			active = m.state.Theme().IsDark()
		case ControlRegionSelect:
			label = fmt.Sprintf("%s: %s", c.Label, m.state.Region())
			active = m.state.Region() != country.AllRegions
		case ControlViewToggle:
			label = fmt.Sprintf("%s: %s", c.Label, viewLabel(m.state.ViewMode()))
			active = m.state.ViewMode() == dashboard.ViewTable
		}
		buttons = append(buttons, components.NewButton(c.Binding.Help().Key, label).WithTheme(theme).WithActive(active))
	}
	return components.NewButtonGroup(buttons...).View()
}

func viewLabel(mode dashboard.ViewMode) string {
	if mode == dashboard.ViewTable {
		return "Table"
	}
	return "Grid"
}

// renderBody hands the filtered list to the renderer for the current view mode
func (m Model) renderBody(height int) string {
	renderer := m.Renderer()
	if renderer == nil {
		return ""
	}

	return renderer.Render(m.Visible(), m.state.Theme().IsDark(), RenderOptions{
		Width:  m.width,
		Height: height,
		Cursor: m.cursor,
	})
}

// renderErrorBanner renders the dismissible error banner
func (m Model) renderErrorBanner(theme components.Theme) string {
	width := 0
	if m.width > 4 {
		width = m.width - 4
	}
	return components.NewAlert(m.errorMsg).
		WithTitle("Error").
		WithDismissHint("x").
		WithTheme(theme).
		WithWidth(width).
		View()
}

// renderFooter renders the footer with keyboard shortcuts
func (m Model) renderFooter(theme components.Theme, st styles) string {
	h := m.help
	h.Styles = helpStyles(theme)

	bindings := m.keys.ShortHelp()
	if m.showError {
		bindings = append(bindings, m.keys.Dismiss)
	}
	if m.reload != nil {
		bindings = append(bindings, m.keys.Reload)
	}

	return st.footer.Render(h.ShortHelpView(bindings))
}

// renderHelpView renders the full key reference
func (m Model) renderHelpView(theme components.Theme, st styles) string {
	h := m.help
	h.Styles = helpStyles(theme)

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		theme.Title().MarginBottom(1).Render("Keyboard shortcuts"),
		h.FullHelpView(m.keys.FullHelp()),
		"",
		theme.Subtle().Render("Press ? or esc to close"),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, st.helpBox.Render(body))
}
