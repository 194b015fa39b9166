package dashboard

import (
	"bytes"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/countrydash/internal/country"
	"github.com/alexisbeaulieu97/countrydash/internal/dashboard"
	"github.com/alexisbeaulieu97/countrydash/internal/logger"
)

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := newFixtureModel()

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	_, shown := m.Error()
	assert.False(t, shown)
}

func TestUpdate_WindowSizeMsg_TooSmall(t *testing.T) {
	m := newFixtureModel()

	m, _ = send(m, tea.WindowSizeMsg{Width: 60, Height: 20})
	msg, shown := m.Error()
	assert.True(t, shown, "Should show error for small terminal")
	assert.Contains(t, msg, "Terminal too small")

	// Growing the terminal clears the size warning
	m, _ = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	_, shown = m.Error()
	assert.False(t, shown)
}

func TestUpdate_DarkModeToggleAddsDarkClass(t *testing.T) {
	m := newFixtureModel()
	control, ok := m.Control(ControlDarkModeToggle)
	require.True(t, ok)

	assert.NotContains(t, m.Classes(), dashboard.ClassDark)

	m, _ = send(m, runeKey(rune(control.Keys()[0][0])))
	assert.Contains(t, m.Classes(), dashboard.ClassDark)

	m, _ = send(m, runeKey('d'))
	assert.NotContains(t, m.Classes(), dashboard.ClassDark)
}

func TestUpdate_ViewToggle(t *testing.T) {
	m := newFixtureModel()

	m, _ = send(m, runeKey('v'))
	assert.Equal(t, dashboard.ViewTable, m.State().ViewMode())
	assert.IsType(t, TableRenderer{}, m.Renderer())
	assert.Contains(t, m.Classes(), dashboard.ClassTable)

	m, _ = send(m, runeKey('v'))
	assert.Equal(t, dashboard.ViewGrid, m.State().ViewMode())
	assert.IsType(t, GridRenderer{}, m.Renderer())
}

func TestUpdate_ControlMessages(t *testing.T) {
	m := newFixtureModel()

	m, _ = send(m, ToggleThemeMsg{})
	m, _ = send(m, ToggleViewMsg{})
	m, _ = send(m, RegionSelectedMsg{Region: "Asia"})

	assert.Equal(t, dashboard.ThemeDark, m.State().Theme())
	assert.Equal(t, dashboard.ViewTable, m.State().ViewMode())
	require.Len(t, m.Visible(), 1)
	assert.Equal(t, "Japan", m.Visible()[0].Name)
}

func TestUpdate_RegionSelectCycles(t *testing.T) {
	m := newFixtureModel()

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Europe", m.State().Region())
	assert.Len(t, m.Visible(), 2)

	m, _ = send(m, runeKey(']'))
	assert.Equal(t, "Asia", m.State().Region())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "Europe", m.State().Region())

	m, _ = send(m, runeKey('['))
	assert.Equal(t, country.AllRegions, m.State().Region())
	assert.Len(t, m.Visible(), 4)
}

func TestUpdate_RegionChangeClampsCursor(t *testing.T) {
	m := newFixtureModel()
	m.cursor = 3

	m, _ = send(m, RegionSelectedMsg{Region: "Europe"})
	assert.Equal(t, 1, m.Cursor())

	m, _ = send(m, RegionSelectedMsg{Region: "Atlantis"})
	assert.Equal(t, 0, m.Cursor())
	assert.Empty(t, m.Visible())
}

func TestUpdate_CursorKeys(t *testing.T) {
	m := newFixtureModel()

	m, _ = send(m, runeKey('j'))
	assert.Equal(t, 1, m.Cursor())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Cursor())

	m, _ = send(m, runeKey('k'))
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Cursor())
}

func TestUpdate_TogglesDoNotTouchRegion(t *testing.T) {
	m := newFixtureModel(dashboard.WithRegion("Europe"))

	m, _ = send(m, runeKey('d'))
	m, _ = send(m, runeKey('v'))

	assert.Equal(t, "Europe", m.State().Region())
	assert.Len(t, m.Visible(), 2)
}

func TestUpdate_Quit(t *testing.T) {
	m := newFixtureModel()

	_, cmd := send(m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_HelpOverlay(t *testing.T) {
	m := newFixtureModel()

	m, _ = send(m, runeKey('?'))
	assert.True(t, m.IsHelpVisible())

	// Controls are inert while help is open
	m, _ = send(m, runeKey('d'))
	assert.Equal(t, dashboard.ThemeLight, m.State().Theme())

	// q closes help instead of quitting
	m, cmd := send(m, runeKey('q'))
	assert.Nil(t, cmd)
	assert.False(t, m.IsHelpVisible())

	m, _ = send(m, ToggleHelpMsg{})
	assert.True(t, m.IsHelpVisible())
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.IsHelpVisible())
}

func TestUpdate_ErrorBanner(t *testing.T) {
	m := newFixtureModel()

	m, _ = send(m, ErrorMsg{Message: "Reload failed: boom", Err: errors.New("boom")})
	msg, shown := m.Error()
	assert.True(t, shown)
	assert.Equal(t, "Reload failed: boom", msg)

	m, _ = send(m, runeKey('x'))
	_, shown = m.Error()
	assert.False(t, shown)

	m, _ = send(m, ErrorMsg{Message: "again"})
	m, _ = send(m, ClearErrorMsg{})
	_, shown = m.Error()
	assert.False(t, shown)
}

func TestUpdate_CountriesLoadedMsg(t *testing.T) {
	m := newFixtureModel(dashboard.WithRegion("Asia"))
	m.cursor = 0

	m, _ = send(m, CountriesLoadedMsg{
		Countries: []country.Country{
			{Name: "India", Region: "Asia"},
			{Name: "China", Region: "Asia"},
			{Name: "Chile", Region: "Americas"},
		},
		Source: "reloaded.json",
	})

	assert.Equal(t, "reloaded.json", m.source)
	assert.Equal(t, "Asia", m.State().Region())
	assert.Len(t, m.Visible(), 2)
	assert.Equal(t, 0, m.Cursor())
}

func TestUpdate_ReloadKey(t *testing.T) {
	calls := 0
	reload := func() ([]country.Country, string, error) {
		calls++
		return []country.Country{{Name: "Peru", Region: "Americas"}}, "fresh.yaml", nil
	}
	m := NewModel(dashboard.NewState(fixtureCountries()), Options{Reload: reload})

	m, cmd := send(m, runeKey('R'))
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(CountriesLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "fresh.yaml", loaded.Source)

	m, _ = send(m, msg)
	assert.Len(t, m.Visible(), 1)
}

func TestUpdate_ReloadFailure(t *testing.T) {
	reload := func() ([]country.Country, string, error) {
		return nil, "", errors.New("file vanished")
	}
	m := NewModel(dashboard.NewState(fixtureCountries()), Options{Reload: reload})

	_, cmd := send(m, runeKey('R'))
	require.NotNil(t, cmd)

	errMsg, ok := cmd().(ErrorMsg)
	require.True(t, ok)
	assert.Contains(t, errMsg.Message, "file vanished")
}

func TestUpdate_ReloadWithoutLoader(t *testing.T) {
	m := newFixtureModel()

	_, cmd := send(m, runeKey('R'))
	assert.Nil(t, cmd)
}

func TestUpdate_LogsTransitions(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	m := NewModel(dashboard.NewState(fixtureCountries()), Options{Logger: log})
	m, _ = send(m, runeKey('d'))
	_, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})

	out := buf.String()
	assert.Contains(t, out, "theme toggled")
	assert.Contains(t, out, `"theme":"dark"`)
	assert.Contains(t, out, `"region":"Europe"`)
}

func TestLoadMsgWrapsOutcome(t *testing.T) {
	msg := LoadMsg(func() ([]country.Country, string, error) {
		return fixtureCountries(), "fixture.json", nil
	})
	loaded, ok := msg.(CountriesLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, "fixture.json", loaded.Source)
	assert.Len(t, loaded.Countries, 4)

	msg = LoadMsg(func() ([]country.Country, string, error) {
		return nil, "", errors.New("boom")
	})
	failed, ok := msg.(ErrorMsg)
	require.True(t, ok)
	assert.Equal(t, "Reload failed: boom", failed.Message)
}

func TestUpdate_CtrlCQuitsFromHelpOverlay(t *testing.T) {
	m := newFixtureModel()
	m, _ = send(m, runeKey('?'))
	require.True(t, m.IsHelpVisible())

	_, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestQuitBindingOnlyListsQ(t *testing.T) {
	assert.Equal(t, []string{"q"}, defaultKeyMap().Quit.Keys())
}
