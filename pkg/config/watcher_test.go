package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitReload(t *testing.T, w *Watcher) ReloadEvent {
	t.Helper()
	select {
	case ev, ok := <-w.Events():
		require.True(t, ok, "events channel closed")
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	return ReloadEvent{}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buttons:\n  - id: a\n"), 0o644))

	w, err := NewWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("buttons:\n  - id: a\n  - id: b\n"), 0o644))
	ev := waitReload(t, w)
	require.NoError(t, ev.Err)
	assert.Len(t, ev.Config.Buttons, 2)

	// 非法内容以错误形式投递
	require.NoError(t, os.WriteFile(path, []byte("title: empty\n"), 0o644))
	ev = waitReload(t, w)
	assert.ErrorIs(t, ev.Err, ErrNoButtons)
	assert.Nil(t, ev.Config)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buttons:\n  - id: a\n"), 0o644))

	w, err := NewWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected reload: %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buttons:\n  - id: a\n"), 0o644))

	w, err := NewWatcher(path, 0)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events()
	assert.False(t, ok, "events channel should be closed")
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "demo.yaml"), 0)
	assert.Error(t, err)
}
