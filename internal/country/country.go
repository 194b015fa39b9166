// Package country holds the country record and the pure operations the
// dashboard derives its views from.
package country

// AllRegions is the region filter value that disables filtering.
const AllRegions = "All"

// Country is a single country record. Records are immutable once loaded.
type Country struct {
	Name       string  `json:"name" yaml:"name" validate:"required,min=1,max=100"`
	Code       string  `json:"code,omitempty" yaml:"code,omitempty" validate:"omitempty,len=3,alpha"`
	Region     string  `json:"region" yaml:"region" validate:"required,min=1,max=64"`
	Subregion  string  `json:"subregion,omitempty" yaml:"subregion,omitempty"`
	Capital    string  `json:"capital,omitempty" yaml:"capital,omitempty"`
	Population int64   `json:"population" yaml:"population" validate:"gte=0"`
	Area       float64 `json:"area,omitempty" yaml:"area,omitempty" validate:"gte=0"`
	FlagURL    string  `json:"flag_url,omitempty" yaml:"flag_url,omitempty" validate:"omitempty,url"`
}

// DisplayCapital returns the capital or a placeholder when unknown.
func (c Country) DisplayCapital() string {
	if c.Capital == "" {
		return "-"
	}
	return c.Capital
}

// DisplayFlag returns the flag image URL or a placeholder when unknown.
func (c Country) DisplayFlag() string {
	if c.FlagURL == "" {
		return "-"
	}
	return c.FlagURL
}
