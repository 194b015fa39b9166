package dashboard

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/countrydash/internal/country"
)

// ReloadFunc fetches a fresh dataset and names its source.
type ReloadFunc func() ([]country.Country, string, error)

// LoadMsg calls reload and wraps the outcome in the message the model
// expects. Callers outside the update loop hand the result to Program.Send.
func LoadMsg(reload ReloadFunc) tea.Msg {
	countries, source, err := reload()
	if err != nil {
		return ErrorMsg{
			Message: fmt.Sprintf("Reload failed: %s", err.Error()),
			Err:     err,
		}
	}
	return CountriesLoadedMsg{Countries: countries, Source: source}
}

// reloadCmd runs reload off the update loop
func reloadCmd(reload ReloadFunc) tea.Cmd {
	return func() tea.Msg {
		return LoadMsg(reload)
	}
}
