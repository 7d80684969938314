package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
)

// Ensure ReportTypeStore implements the interface.
var _ driven.ReportTypeStore = (*ReportTypeStore)(nil)

// reportTypeCatalog is the on-disk shape of the report-type file.
type reportTypeCatalog struct {
	ReportTypes map[string]domain.ReportType `json:"report_types"`
	CreatedAt   time.Time                    `json:"created_at"`
	LastUpdated time.Time                    `json:"last_updated"`
}

// ReportTypeStore is a JSON-file implementation of driven.ReportTypeStore.
// The whole catalog is read at startup and rewritten in full after every
// mutation; catalogs are small enough that this is simpler than partial
// updates.
type ReportTypeStore struct {
	mu       sync.RWMutex
	filePath string
	catalog  reportTypeCatalog
}

// NewReportTypeStore creates a report-type store under configDir.
// If configDir is empty, defaults to ~/.rapor.
func NewReportTypeStore(configDir string) (*ReportTypeStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".rapor")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ReportTypeStore{
		filePath: filepath.Join(configDir, "report_types.json"),
		catalog: reportTypeCatalog{
			ReportTypes: make(map[string]domain.ReportType),
			CreatedAt:   time.Now(),
		},
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Save stores or replaces a report type and rewrites the catalog file.
func (s *ReportTypeStore) Save(_ context.Context, rt domain.ReportType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog.ReportTypes[rt.ID] = rt
	return s.save()
}

// Get retrieves a report type by ID.
func (s *ReportTypeStore) Get(_ context.Context, id string) (*domain.ReportType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rt, ok := s.catalog.ReportTypes[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, domain.ErrUnknownReportType)
	}
	rt.Questions = append([]string(nil), rt.Questions...)
	return &rt, nil
}

// List returns all report types, ordered by ID.
func (s *ReportTypeStore) List(_ context.Context) ([]domain.ReportType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	types := make([]domain.ReportType, 0, len(s.catalog.ReportTypes))
	for _, rt := range s.catalog.ReportTypes {
		rt.Questions = append([]string(nil), rt.Questions...)
		types = append(types, rt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].ID < types[j].ID })
	return types, nil
}

// Delete removes a report type by ID.
func (s *ReportTypeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.catalog.ReportTypes[id]; !ok {
		return fmt.Errorf("%q: %w", id, domain.ErrUnknownReportType)
	}
	delete(s.catalog.ReportTypes, id)
	return s.save()
}

// load reads the catalog file; a missing file yields an empty catalog.
func (s *ReportTypeStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading report types: %w", err)
	}

	var catalog reportTypeCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("parsing report types: %w", err)
	}
	if catalog.ReportTypes == nil {
		catalog.ReportTypes = make(map[string]domain.ReportType)
	}
	s.catalog = catalog
	return nil
}

// save rewrites the catalog file (caller must hold lock).
func (s *ReportTypeStore) save() error {
	s.catalog.LastUpdated = time.Now()

	data, err := json.MarshalIndent(s.catalog, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}
