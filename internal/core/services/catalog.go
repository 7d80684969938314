package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driven"
	"github.com/kanca-labs/rapor-cli/internal/core/ports/driving"
	"github.com/kanca-labs/rapor-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService manages the report-type catalog on top of the
// report-type store, adding validation and built-in seeding.
type CatalogService struct {
	store driven.ReportTypeStore
}

// NewCatalogService creates a catalog over the given store.
func NewCatalogService(store driven.ReportTypeStore) *CatalogService {
	return &CatalogService{store: store}
}

// EnsureDefaults seeds the built-in report types that are missing from
// the store. Existing entries, including user-edited copies of the
// built-ins, are never overwritten.
func (c *CatalogService) EnsureDefaults(ctx context.Context) error {
	existing, err := c.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list report types: %w", err)
	}
	present := make(map[string]struct{}, len(existing))
	for _, rt := range existing {
		present[rt.ID] = struct{}{}
	}

	seeded := 0
	for _, rt := range builtinReportTypes() {
		if _, ok := present[rt.ID]; ok {
			continue
		}
		if err := c.store.Save(ctx, rt); err != nil {
			return fmt.Errorf("seed report type %s: %w", rt.ID, err)
		}
		seeded++
	}
	if seeded > 0 {
		logger.Info("Seeded %d built-in report types", seeded)
	}
	return nil
}

// Create validates and stores a new report type.
func (c *CatalogService) Create(ctx context.Context, rt domain.ReportType) error {
	rt.ID = strings.TrimSpace(rt.ID)
	rt.Name = strings.TrimSpace(rt.Name)
	if rt.ID == "" {
		return fmt.Errorf("create report type: empty id")
	}
	if rt.Name == "" {
		return fmt.Errorf("create report type %s: empty name", rt.ID)
	}
	if len(rt.Questions) == 0 {
		return fmt.Errorf("create report type %s: no questions", rt.ID)
	}

	rt.TruncateKnowledgeBase()
	if rt.CreatedAt.IsZero() {
		rt.CreatedAt = time.Now()
	}

	if err := c.store.Save(ctx, rt); err != nil {
		return fmt.Errorf("save report type %s: %w", rt.ID, err)
	}
	logger.Info("Saved report type %s (%d questions)", rt.ID, len(rt.Questions))
	return nil
}

// Get retrieves a report type by ID.
func (c *CatalogService) Get(ctx context.Context, id string) (*domain.ReportType, error) {
	return c.store.Get(ctx, id)
}

// List returns all report types.
func (c *CatalogService) List(ctx context.Context) ([]domain.ReportType, error) {
	return c.store.List(ctx)
}

// Delete removes a report type.
func (c *CatalogService) Delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, id)
}
