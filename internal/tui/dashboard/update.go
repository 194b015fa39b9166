package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const tooSmallPrefix = "Terminal too small"

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("%s (%dx%d). Minimum size: %dx%d",
				tooSmallPrefix, m.width, m.height, minWidth, minHeight)
			m.log.Warn("terminal too small", "width", m.width, "height", m.height)
		} else if m.showError && strings.HasPrefix(m.errorMsg, tooSmallPrefix) {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Control messages
	case ToggleThemeMsg:
		m.toggleTheme()
		return m, nil

	case ToggleViewMsg:
		m.toggleView()
		return m, nil

	case RegionSelectedMsg:
		m.state.SetRegion(msg.Region)
		m.regionChanged()
		return m, nil

	// Data messages
	case CountriesLoadedMsg:
		m.state.SetCountries(msg.Countries)
		if msg.Source != "" {
			m.source = msg.Source
		}
		m.cursor = 0
		m.log.Info("countries loaded", "source", m.source, "count", len(msg.Countries))
		return m, nil

	// Error messages
	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		m.log.Error(msg.Err, "dashboard error", "message", msg.Message)
		return m, nil

	case ClearErrorMsg:
		m.showError = false
		m.errorMsg = ""
		return m, nil

	case ToggleHelpMsg:
		m.showHelp = !m.showHelp
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		return m.handleHelpKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.DarkMode):
		m.toggleTheme()

	case key.Matches(msg, m.keys.View):
		m.toggleView()

	case key.Matches(msg, m.keys.RegionNext):
		m.state.NextRegion()
		m.regionChanged()

	case key.Matches(msg, m.keys.RegionPrev):
		m.state.PrevRegion()
		m.regionChanged()

	case key.Matches(msg, m.keys.Up):
		m.MoveCursorUp()

	case key.Matches(msg, m.keys.Down):
		m.MoveCursorDown()

	case key.Matches(msg, m.keys.Reload):
		if m.reload == nil {
			return m, nil
		}
		return m, reloadCmd(m.reload)

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Dismiss):
		if m.showError {
			m.showError = false
			m.errorMsg = ""
		}
	}

	return m, nil
}

// handleHelpKeys handles keys while the help overlay is shown
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.showHelp = false
	}
	return m, nil
}

func (m *Model) toggleTheme() {
	theme := m.state.ToggleTheme()
	m.log.Debug("theme toggled", "theme", theme.String())
}

func (m *Model) toggleView() {
	mode := m.state.ToggleViewMode()
	m.log.Debug("view toggled", "view", mode.String())
}

func (m *Model) regionChanged() {
	m.clampCursor()
	m.log.Debug("region changed", "region", m.state.Region(), "visible", len(m.Visible()))
}
