package services

import (
	"unicode/utf8"

	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
	"github.com/kanca-labs/rapor-cli/internal/prompts"
)

// loadPrompt returns the template for name from the store, falling back
// to the embedded default when the store is nil or fails.
func loadPrompt(store driven.PromptStore, name string) string {
	if store != nil {
		if p, err := store.Load(name); err == nil && p != "" {
			return p
		}
	}
	p, _ := prompts.Default(name)
	return p
}

// truncate bounds s to at most n bytes without splitting a rune: the cut
// backs up to the nearest rune start.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
