package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureDataset = `[
  {"name": "France", "code": "FRA", "region": "Europe", "capital": "Paris", "population": 67391582},
  {"name": "Japan", "code": "JPN", "region": "Asia", "capital": "Tokyo", "population": 125836021},
  {"name": "Spain", "code": "ESP", "region": "Europe", "capital": "Madrid", "population": 47351567}
]`

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
