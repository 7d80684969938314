package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypesListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"types", "list"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No report types defined.")
}

func TestTypesCreateCmd_WithExplicitQuestions(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"types", "create", "ev_ziyareti",
		"--name", "Ev Ziyareti Raporu",
		"--question", "İlk soru?",
		"--question", "İkinci soru?",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		typesCreateName = ""
		typesCreateQuestions = nil
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Created ev_ziyareti with 2 questions.")
}

func TestTypesCreateCmd_InducesFromDocuments(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"types", "create", "yeni_tur", "--from", "ornek.pdf"})
	defer func() {
		rootCmd.SetArgs(nil)
		typesCreateFrom = nil
		typesCreateName = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Analyzing 1 document(s)")
	assert.Contains(t, out, "Created yeni_tur with 2 questions.")

	// Name falls back to the induced suggestion and the extracted sample
	// text is retained as the knowledge base.
	rt, err := catalogService.Get(t.Context(), "yeni_tur")
	require.NoError(t, err)
	assert.Equal(t, "Önerilen Tür", rt.Name)
	assert.Equal(t, "Örnek belgelerden çıkarılan metin.", rt.KnowledgeBase)
}

func TestTypesShowCmd_Unknown(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"types", "show", "yok"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	assert.Error(t, err)
}

func TestTypesOptimizeCmd_RequiresFrom(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"types", "optimize", "ev_ziyareti"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--from")
}
