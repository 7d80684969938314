package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func supportsTxt(path string) bool {
	return strings.HasSuffix(path, ".txt")
}

func TestNew_RejectsMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "yok"), nil)
	assert.Error(t, err)
}

func TestNew_RejectsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dosya.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	_, err := New(path, nil)
	assert.Error(t, err)
}

func TestWatcher_DetectsCreate(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, supportsTxt)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := w.Watch(ctx)

	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(filepath.Join(dir, "yeni.txt"), []byte("içerik"), 0600)
	}()

	select {
	case change := <-changes:
		assert.Equal(t, ChangeCreated, change.Type)
		assert.Contains(t, change.Path, "yeni.txt")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for create event")
	}
}

func TestWatcher_ClosesChannelOnCancel(t *testing.T) {
	w, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	changes := w.Watch(ctx)
	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for channel close")
	}
}

func TestHandleEvent(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "rapor.txt")
	require.NoError(t, os.WriteFile(existing, []byte("içerik"), 0600))

	subdir := filepath.Join(dir, "klasor")
	require.NoError(t, os.Mkdir(subdir, 0700))

	w, err := New(dir, supportsTxt)
	require.NoError(t, err)
	defer w.Close()

	tests := []struct {
		name string
		event fsnotify.Event
		want  *Change
	}{
		{
			name:  "create file",
			event: fsnotify.Event{Name: existing, Op: fsnotify.Create},
			want:  &Change{Type: ChangeCreated, Path: existing},
		},
		{
			name:  "write file",
			event: fsnotify.Event{Name: existing, Op: fsnotify.Write},
			want:  &Change{Type: ChangeUpdated, Path: existing},
		},
		{
			name:  "remove file",
			event: fsnotify.Event{Name: filepath.Join(dir, "silindi.txt"), Op: fsnotify.Remove},
			want:  &Change{Type: ChangeDeleted, Path: filepath.Join(dir, "silindi.txt")},
		},
		{
			name:  "rename treated as delete",
			event: fsnotify.Event{Name: filepath.Join(dir, "tasindi.txt"), Op: fsnotify.Rename},
			want:  &Change{Type: ChangeDeleted, Path: filepath.Join(dir, "tasindi.txt")},
		},
		{
			name:  "chmod ignored",
			event: fsnotify.Event{Name: existing, Op: fsnotify.Chmod},
			want:  nil,
		},
		{
			name:  "directory ignored",
			event: fsnotify.Event{Name: subdir, Op: fsnotify.Create},
			want:  nil,
		},
		{
			name:  "unsupported extension ignored",
			event: fsnotify.Event{Name: filepath.Join(dir, "resim.png"), Op: fsnotify.Remove},
			want:  nil,
		},
		{
			name:  "hidden file ignored",
			event: fsnotify.Event{Name: filepath.Join(dir, ".gizli.txt"), Op: fsnotify.Create},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.handleEvent(tt.event))
		})
	}
}

func TestIsHidden(t *testing.T) {
	assert.True(t, isHidden("/veri/.gizli.txt"))
	assert.True(t, isHidden(".config/dosya.txt"))
	assert.False(t, isHidden("/veri/rapor.txt"))
	assert.False(t, isHidden("../veri/rapor.txt"))
}
