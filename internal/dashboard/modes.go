package dashboard

import (
	"fmt"
	"strings"
)

// Theme is the light/dark presentation state.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether the theme is dark.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// ParseTheme converts "light" or "dark" into a Theme. Empty input yields ThemeLight.
func ParseTheme(value string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return ThemeLight, fmt.Errorf("unknown theme %q (expected light or dark)", value)
	}
}

// ViewMode is the layout used to render the filtered list.
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewTable
)

// Toggle returns the opposite view mode.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewTable {
		return ViewGrid
	}
	return ViewTable
}

func (v ViewMode) String() string {
	if v == ViewTable {
		return "table"
	}
	return "grid"
}

// ParseViewMode converts "grid" or "table" into a ViewMode. Empty input yields ViewGrid.
func ParseViewMode(value string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "grid":
		return ViewGrid, nil
	case "table":
		return ViewTable, nil
	default:
		return ViewGrid, fmt.Errorf("unknown view mode %q (expected grid or table)", value)
	}
}
