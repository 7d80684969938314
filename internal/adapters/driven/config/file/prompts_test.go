package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
	"github.com/kanca-labs/rapor-cli/internal/prompts"
)

func TestPromptStore_SeedsDefaultsOnFirstLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	got, err := store.Load(driven.PromptClassify)
	require.NoError(t, err)

	want, ok := prompts.Default(driven.PromptClassify)
	require.True(t, ok)
	assert.Equal(t, want, got)

	// Every default should now exist on disk, plus the README.
	for _, name := range prompts.Names() {
		assert.FileExists(t, filepath.Join(dir, "prompts", name+".txt"))
	}
	assert.FileExists(t, filepath.Join(dir, "prompts", "README.md"))
}

func TestPromptStore_PrefersEditedFile(t *testing.T) {
	dir := t.TempDir()
	promptDir := filepath.Join(dir, "prompts")
	require.NoError(t, os.MkdirAll(promptDir, 0700))

	edited := "Özelleştirilmiş şablon: %s"
	require.NoError(t, os.WriteFile(filepath.Join(promptDir, "classify.txt"), []byte(edited), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	got, err := store.Load(driven.PromptClassify)
	require.NoError(t, err)
	assert.Equal(t, edited, got)
}

func TestPromptStore_ReloadPicksUpEdits(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.PromptInduce)
	require.NoError(t, err)

	edited := "Yeni şablon"
	path := filepath.Join(dir, "prompts", "induce.txt")
	require.NoError(t, os.WriteFile(path, []byte(edited), 0600))

	// Cached copy survives until Reload.
	cached, err := store.Load(driven.PromptInduce)
	require.NoError(t, err)
	assert.NotEqual(t, edited, cached)

	store.Reload()
	fresh, err := store.Load(driven.PromptInduce)
	require.NoError(t, err)
	assert.Equal(t, edited, fresh)
}

func TestPromptStore_UnknownPrompt(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("yok")
	assert.Error(t, err)
}
