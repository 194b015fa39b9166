package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/countrydash/internal/logger"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "countries.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	w, err := NewWatcher(path, 20*time.Millisecond, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	assert.Equal(t, path, w.Path())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 4)
	go w.Run(ctx, func() { changed <- struct{}{} })

	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "France", "region": "Europe"}]`), 0o644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change notification")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "countries.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	w, err := NewWatcher(path, 20*time.Millisecond, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 4)
	go w.Run(ctx, func() { changed <- struct{}{} })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`[]`), 0o644))

	select {
	case <-changed:
		t.Fatal("unexpected change notification")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNewWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "countries.json"), 0, logger.Discard())
	require.Error(t, err)
}
