package watcher

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/orbitgizmo/internal/logging"
	"github.com/philipparndt/orbitgizmo/pkg/config"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func writeConfig(t *testing.T, path string, mutate func(*config.Config)) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, cfg.Save(path))
}

func TestConfigWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gizmo.json")
	writeConfig(t, path, nil)

	changes := make(chan config.Config, 4)
	w, err := NewConfigWatcher(path, 20*time.Millisecond, nil, func(c config.Config) {
		changes <- c
	})
	require.NoError(t, err)
	defer w.Close()

	writeConfig(t, path, func(c *config.Config) { c.InteractionMode = "display-only" })

	select {
	case c := <-changes:
		assert.Equal(t, "display-only", c.InteractionMode)
	case <-time.After(3 * time.Second):
		t.Fatal("config change not delivered")
	}
}

func TestConfigWatcherIgnoresInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gizmo.json")
	writeConfig(t, path, nil)

	var errOut syncBuffer
	logger := logging.NewWithWriters("watcher", false, &errOut, &errOut)

	changes := make(chan config.Config, 4)
	w, err := NewConfigWatcher(path, 20*time.Millisecond, logger, func(c config.Config) {
		changes <- c
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(`{"orbitSpeed": -1}`), 0o644))

	assert.Eventually(t, func() bool {
		return strings.Contains(errOut.String(), "keeping previous config")
	}, 3*time.Second, 10*time.Millisecond)
	assert.Empty(t, changes)
}

func TestConfigWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gizmo.json")
	writeConfig(t, path, nil)

	changes := make(chan config.Config, 4)
	w, err := NewConfigWatcher(path, 10*time.Millisecond, nil, func(c config.Config) {
		changes <- c
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, changes)
}

func TestConfigWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gizmo.json")
	writeConfig(t, path, nil)

	w, err := NewConfigWatcher(path, 0, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestConfigWatcherMissingDirectory(t *testing.T) {
	_, err := NewConfigWatcher(filepath.Join(t.TempDir(), "nope", "gizmo.json"), 0, nil, nil)
	assert.Error(t, err)
}
