package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionsCommandListsOptionsWithCounts(t *testing.T) {
	data := writeFile(t, "countries.json", fixtureDataset)

	output, _, err := executeCommand(t, "regions", "--data", data)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"REGION", "COUNTRIES"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"All", "3"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"Europe", "2"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"Asia", "1"}, strings.Fields(lines[3]))
}
