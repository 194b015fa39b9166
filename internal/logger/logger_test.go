package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"component": "dashboard"})
	log.Info("region changed", "region", "Europe", "visible", 2)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "region changed", entry["message"])
	require.Equal(t, "dashboard", entry["component"])
	require.Equal(t, "Europe", entry["region"])
	require.Equal(t, float64(2), entry["visible"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"source": "countries.json"})
	log.Error(errors.New("boom"), "load failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "load failed", entry["message"])
	require.Equal(t, "countries.json", entry["source"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "countrydash.log")
	log, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)

	log.Warn("terminal too small", "width", 40)
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "terminal too small")
	require.Contains(t, string(data), `"level":"warn"`)
}

func TestNilAndDiscardLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	nilLogger.Info("ignored")
	nilLogger.Error(errors.New("ignored"), "ignored")
	require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
	require.NoError(t, nilLogger.Close())

	discard := Discard()
	discard.Debug("ignored", "key", "value")
	require.NoError(t, discard.Close())
}
