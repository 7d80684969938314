package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
	"github.com/kanca-labs/rapor-cli/internal/prompts"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads prompt templates from user-editable files, seeding
// them from the embedded defaults on first use. Each prompt lives in its
// own .txt file under <configDir>/prompts so users can tune a single
// pipeline stage without touching the others.
type PromptStore struct {
	dir      string
	initOnce sync.Once
	initErr  error

	mu    sync.RWMutex
	cache map[string]string
}

// NewPromptStore creates a prompt store rooted at configDir.
// If configDir is empty, defaults to ~/.rapor. Files are created lazily
// on first Load, not here, so constructing the store never touches disk.
func NewPromptStore(configDir string) (*PromptStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".rapor")
	}

	return &PromptStore{
		dir:   filepath.Join(configDir, "prompts"),
		cache: make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
func (s *PromptStore) Load(name string) (string, error) {
	s.mu.RLock()
	cached, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	s.initOnce.Do(s.initialize)
	if s.initErr != nil {
		return "", s.initErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring the write lock.
	if cached, ok := s.cache[name]; ok {
		return cached, nil
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			// Unknown or deleted file: fall back to the embedded default.
			if def, ok := prompts.Default(name); ok {
				s.cache[name] = def
				return def, nil
			}
			return "", fmt.Errorf("unknown prompt %q", name)
		}
		return "", fmt.Errorf("reading prompt %q: %w", name, err)
	}

	prompt := string(data)
	s.cache[name] = prompt
	return prompt, nil
}

// Reload clears the cache so edited files are picked up on next Load.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]string)
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.dir
}

// initialize creates the prompt directory and seeds any missing prompt
// files from the embedded defaults. Existing files are never overwritten.
func (s *PromptStore) initialize() {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		s.initErr = fmt.Errorf("creating prompt directory: %w", err)
		return
	}

	for _, name := range prompts.Names() {
		path := s.path(name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		def, _ := prompts.Default(name)
		if err := os.WriteFile(path, []byte(def), 0600); err != nil {
			s.initErr = fmt.Errorf("seeding prompt %q: %w", name, err)
			return
		}
	}

	readme := filepath.Join(s.dir, "README.md")
	if _, err := os.Stat(readme); os.IsNotExist(err) {
		content := `# Prompt Şablonları

Bu dizindeki .txt dosyaları rapor üretim hattının her aşamasında
kullanılan LLM şablonlarını içerir. Dosyaları düzenleyerek davranışı
özelleştirebilirsiniz; bir dosyayı silerseniz bir sonraki çalıştırmada
varsayılan içerikle yeniden oluşturulur.

Şablonlardaki %s ve %d yer tutucularını koruyun: uygulama bunları
çalışma anında doldurur.
`
		// Best effort: a missing README never blocks prompt loading.
		_ = os.WriteFile(readme, []byte(content), 0600)
	}
}

func (s *PromptStore) path(name string) string {
	return filepath.Join(s.dir, name+".txt")
}
