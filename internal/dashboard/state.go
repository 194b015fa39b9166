// Package dashboard owns the UI state of the country dashboard: the loaded
// countries, the region filter, the view mode and the theme.
package dashboard

import (
	"github.com/alexisbeaulieu97/countrydash/internal/country"
)

// Presentation attributes reported by Classes.
const (
	ClassDark  = "dark"
	ClassGrid  = "grid"
	ClassTable = "table"
)

// State is the single owner of the dashboard's mutable state. Renderers and
// the filter only read from it.
type State struct {
	countries []country.Country
	region    string
	viewMode  ViewMode
	theme     Theme
}

// Option customises a State at construction time.
type Option func(*State)

// WithTheme sets the initial theme.
func WithTheme(theme Theme) Option {
	return func(s *State) {
		s.theme = theme
	}
}

// WithViewMode sets the initial view mode.
func WithViewMode(mode ViewMode) Option {
	return func(s *State) {
		s.viewMode = mode
	}
}

// WithRegion sets the initial region filter. Empty values are ignored.
func WithRegion(region string) Option {
	return func(s *State) {
		if region != "" {
			s.region = region
		}
	}
}

// NewState creates a State with grid view, light theme and no region filter
// unless overridden by opts.
func NewState(countries []country.Country, opts ...Option) *State {
	s := &State{
		countries: countries,
		region:    country.AllRegions,
		viewMode:  ViewGrid,
		theme:     ThemeLight,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Countries returns the full country list. Callers must not modify it.
func (s *State) Countries() []country.Country {
	return s.countries
}

// SetCountries replaces the full list. The region filter is kept.
func (s *State) SetCountries(countries []country.Country) {
	s.countries = countries
}

// Region returns the active region filter.
func (s *State) Region() string {
	return s.region
}

// SetRegion sets the region filter. Empty input resets to all regions.
func (s *State) SetRegion(region string) {
	if region == "" {
		region = country.AllRegions
	}
	s.region = region
}

// RegionOptions returns the values the region selector offers.
func (s *State) RegionOptions() []string {
	return country.RegionOptions(s.countries)
}

// NextRegion advances the region filter to the next option, wrapping around.
func (s *State) NextRegion() string {
	return s.stepRegion(1)
}

// PrevRegion moves the region filter to the previous option, wrapping around.
func (s *State) PrevRegion() string {
	return s.stepRegion(-1)
}

func (s *State) stepRegion(delta int) string {
	options := s.RegionOptions()
	current := -1
	for i, opt := range options {
		if opt == s.region {
			current = i
			break
		}
	}

	// An unknown region restarts the cycle from "All".
	if current < 0 {
		s.region = country.AllRegions
		return s.region
	}

	next := (current + delta + len(options)) % len(options)
	s.region = options[next]
	return s.region
}

// Theme returns the current theme.
func (s *State) Theme() Theme {
	return s.theme
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *State) ToggleTheme() Theme {
	s.theme = s.theme.Toggle()
	return s.theme
}

// ViewMode returns the current view mode.
func (s *State) ViewMode() ViewMode {
	return s.viewMode
}

// ToggleViewMode flips between grid and table and returns the new mode.
func (s *State) ToggleViewMode() ViewMode {
	s.viewMode = s.viewMode.Toggle()
	return s.viewMode
}

// Filtered returns the countries matching the current region filter.
func (s *State) Filtered() []country.Country {
	return country.Filter(s.countries, s.region)
}

// Classes returns the presentation attributes of the root view.
func (s *State) Classes() []string {
	classes := make([]string, 0, 2)
	if s.theme.IsDark() {
		classes = append(classes, ClassDark)
	}
	if s.viewMode == ViewTable {
		classes = append(classes, ClassTable)
	} else {
		classes = append(classes, ClassGrid)
	}
	return classes
}

// HasClass reports whether Classes contains class.
func (s *State) HasClass(class string) bool {
	for _, c := range s.Classes() {
		if c == class {
			return true
		}
	}
	return false
}
