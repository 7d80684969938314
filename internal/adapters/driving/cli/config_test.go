package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanca-labs/rapor-cli/internal/adapters/driven/config/file"
)

func setupTestConfig(t *testing.T) func() {
	t.Helper()
	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	prev := configStore
	configStore = store
	return func() { configStore = prev }
}

func TestConfigSetAndGet(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "llm.provider", "gemini"})
	defer rootCmd.SetArgs(nil)
	require.NoError(t, rootCmd.Execute())

	buf.Reset()
	rootCmd.SetArgs([]string{"config", "get", "llm.provider"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "gemini")
}

func TestConfigGet_MissingKey(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "get", "yok.anahtar"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	assert.Error(t, err)
}

func TestConfigGet_MasksAPIKey(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, configStore.Set("gemini.api_key", "AIzaSyDemoKey123456"))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "get", "gemini.api_key"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	out := buf.String()
	assert.NotContains(t, out, "AIzaSyDemoKey123456")
	assert.Contains(t, out, "AIza...3456")
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey("kisa"))
	assert.Equal(t, "abcd...wxyz", maskAPIKey("abcdefghijklmnopqrstuvwxyz"))
}
