package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPopulation(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		expected string
	}{
		{name: "zero", value: 0, expected: "0"},
		{name: "hundreds", value: 999, expected: "999"},
		{name: "thousands", value: 1000, expected: "1,000"},
		{name: "millions", value: 67391582, expected: "67,391,582"},
		{name: "billions", value: 1380004385, expected: "1,380,004,385"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPopulation(tt.value))
		})
	}
}

func TestFormatArea(t *testing.T) {
	assert.Equal(t, "-", FormatArea(0))
	assert.Equal(t, "551,695 km²", FormatArea(551695))
}
