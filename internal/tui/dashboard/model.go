package dashboard

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/countrydash/internal/country"
	"github.com/alexisbeaulieu97/countrydash/internal/dashboard"
	"github.com/alexisbeaulieu97/countrydash/internal/logger"
)

const (
	minWidth  = 80
	minHeight = 24
)

// Options configures a Model.
type Options struct {
	// Source names where the countries came from; shown in the header.
	Source string
	// Reload, when set, enables the reload key.
	Reload ReloadFunc
	// Logger receives state transition logs. Nil disables logging.
	Logger *logger.Logger
	// Renderers overrides the renderer used for a view mode.
	Renderers map[dashboard.ViewMode]Renderer
}

// Model is the root dashboard component
type Model struct {
	// Core data
	state  *dashboard.State
	source string

	// UI state
	cursor   int
	showHelp bool

	// Error state
	showError bool
	errorMsg  string

	// Dimensions
	width  int
	height int

	// Collaborators
	renderers map[dashboard.ViewMode]Renderer
	reload    ReloadFunc
	log       *logger.Logger

	keys keyMap
	help help.Model
}

// NewModel creates a dashboard model around state. A nil state is replaced
// by an empty one.
func NewModel(state *dashboard.State, opts Options) Model {
	if state == nil {
		state = dashboard.NewState(nil)
	}

	renderers := map[dashboard.ViewMode]Renderer{
		dashboard.ViewGrid:  RendererFor(dashboard.ViewGrid),
		dashboard.ViewTable: RendererFor(dashboard.ViewTable),
	}
	for mode, r := range opts.Renderers {
		renderers[mode] = r
	}

	return Model{
		state:     state,
		source:    opts.Source,
		renderers: renderers,
		reload:    opts.Reload,
		log:       opts.Logger,
		keys:      defaultKeyMap(),
		help:      help.New(),
		width:     minWidth,
		height:    minHeight,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return nil
}

// State exposes the underlying state store.
func (m Model) State() *dashboard.State {
	return m.state
}

// Classes returns the presentation attributes of the root view.
func (m Model) Classes() []string {
	return m.state.Classes()
}

// Visible returns the countries currently handed to the renderer.
func (m Model) Visible() []country.Country {
	return m.state.Filtered()
}

// Cursor returns the index of the selected country within Visible.
func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the country under the cursor.
func (m Model) Selected() (country.Country, bool) {
	visible := m.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return country.Country{}, false
	}
	return visible[m.cursor], true
}

// Renderer returns the renderer for the current view mode.
func (m Model) Renderer() Renderer {
	return m.renderers[m.state.ViewMode()]
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	n := len(m.Visible())
	if n == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = n - 1
	}
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	n := len(m.Visible())
	if n == 0 {
		return
	}
	m.cursor++
	if m.cursor >= n {
		m.cursor = 0
	}
}

// clampCursor keeps the cursor inside the visible list.
func (m *Model) clampCursor() {
	n := len(m.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// IsHelpVisible reports whether the help overlay is shown.
func (m Model) IsHelpVisible() bool {
	return m.showHelp
}

// Error returns the banner message and whether it is shown.
func (m Model) Error() (string, bool) {
	return m.errorMsg, m.showError
}
