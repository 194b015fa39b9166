package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
)

// Stable hooks identifying the user-facing controls.
const (
	ControlDarkModeToggle = "dark-mode-toggle"
	ControlRegionSelect   = "region-select"
	ControlViewToggle     = "view-toggle"
)

// Control describes one user-facing control and the keys that fire it.
type Control struct {
	ID      string
	Label   string
	Binding key.Binding
}

// Keys returns the keys bound to the control.
func (c Control) Keys() []string {
	return c.Binding.Keys()
}

// Controls returns the dashboard controls in display order. They exist from
// construction, before any input has been handled.
func (m Model) Controls() []Control {
	return []Control{
		{ID: ControlDarkModeToggle, Label: "Dark mode", Binding: m.keys.DarkMode},
		{ID: ControlRegionSelect, Label: "Region", Binding: m.keys.RegionNext},
		{ID: ControlViewToggle, Label: "View", Binding: m.keys.View},
	}
}

// Control looks up a control by its hook identifier.
func (m Model) Control(id string) (Control, bool) {
	for _, c := range m.Controls() {
		if c.ID == id {
			return c, true
		}
	}
	return Control{}, false
}
