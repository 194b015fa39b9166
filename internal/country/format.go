package country

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatPopulation renders n with thousands grouping, e.g. "1,234,567".
func FormatPopulation(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatArea renders an area in square kilometres, or "-" when unknown.
func FormatArea(km2 float64) string {
	if km2 <= 0 {
		return "-"
	}
	return printer.Sprintf("%.0f km²", km2)
}
