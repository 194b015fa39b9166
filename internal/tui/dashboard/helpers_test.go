package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/countrydash/internal/country"
	"github.com/alexisbeaulieu97/countrydash/internal/dashboard"
)

func fixtureCountries() []country.Country {
	return []country.Country{
		{Name: "France", Code: "FRA", Region: "Europe", Subregion: "Western Europe", Capital: "Paris", Population: 67391582},
		{Name: "Japan", Code: "JPN", Region: "Asia", Subregion: "Eastern Asia", Capital: "Tokyo", Population: 125836021},
		{Name: "Spain", Code: "ESP", Region: "Europe", Subregion: "Southern Europe", Capital: "Madrid", Population: 47351567},
		{Name: "Kenya", Code: "KEN", Region: "Africa", Capital: "Nairobi", Population: 53771300},
	}
}

func newFixtureModel(opts ...dashboard.Option) Model {
	return NewModel(dashboard.NewState(fixtureCountries(), opts...), Options{})
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// send feeds msg through Update and returns the resulting Model.
func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// recordingRenderer remembers the list it was asked to draw.
type recordingRenderer struct {
	name     string
	received *[]country.Country
	dark     *bool
}

func (r recordingRenderer) Render(countries []country.Country, dark bool, _ RenderOptions) string {
	*r.received = append([]country.Country(nil), countries...)
	*r.dark = dark
	return "rendered by " + r.name
}
