package dashboard

import (
	"github.com/alexisbeaulieu97/countrydash/internal/country"
)

// Data Messages

// CountriesLoadedMsg replaces the dataset shown by the dashboard
type CountriesLoadedMsg struct {
	Countries []country.Country
	Source    string
}

// Control Messages

// ToggleThemeMsg fires the dark-mode toggle
type ToggleThemeMsg struct{}

// ToggleViewMsg fires the grid/table toggle
type ToggleViewMsg struct{}

// RegionSelectedMsg sets the region filter to Region
type RegionSelectedMsg struct {
	Region string
}

// Error Messages

// ErrorMsg indicates a general error occurred
type ErrorMsg struct {
	Message string
	Err     error
}

// ClearErrorMsg requests error banner dismissal
type ClearErrorMsg struct{}

// Help Messages

// ToggleHelpMsg requests help overlay toggle
type ToggleHelpMsg struct{}
