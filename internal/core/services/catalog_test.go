package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanca-labs/rapor-cli/internal/core/domain"
)

func TestCatalog_EnsureDefaults(t *testing.T) {
	store := newMockReportTypeStore()
	catalog := NewCatalogService(store)
	ctx := context.Background()

	require.NoError(t, catalog.EnsureDefaults(ctx))

	types, err := catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, types, 4)

	ids := make([]string, len(types))
	for i, rt := range types {
		ids[i] = rt.ID
		assert.Len(t, rt.Questions, 10, rt.ID)
	}
	assert.ElementsMatch(t, []string{"sosyal_inceleme", "ilk_gorusme", "aile_danismanligi", "cocuk_koruma"}, ids)
}

func TestCatalog_EnsureDefaultsKeepsUserEdits(t *testing.T) {
	store := newMockReportTypeStore()
	catalog := NewCatalogService(store)
	ctx := context.Background()

	edited := domain.ReportType{
		ID:        "sosyal_inceleme",
		Name:      "Özelleştirilmiş İnceleme",
		Questions: []string{"Tek soru?"},
	}
	require.NoError(t, store.Save(ctx, edited))

	require.NoError(t, catalog.EnsureDefaults(ctx))

	rt, err := catalog.Get(ctx, "sosyal_inceleme")
	require.NoError(t, err)
	assert.Equal(t, "Özelleştirilmiş İnceleme", rt.Name)
	assert.Len(t, rt.Questions, 1)

	types, err := catalog.List(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 4)
}

func TestCatalog_Create(t *testing.T) {
	catalog := NewCatalogService(newMockReportTypeStore())
	ctx := context.Background()

	rt := domain.ReportType{
		ID:          " yasli_bakim ",
		Name:        "Yaşlı Bakım Raporu",
		Description: "Yaşlı bireyin bakım ihtiyacının değerlendirilmesi",
		Questions:   []string{"Bakım veren kim?", "Sağlık durumu nasıl?"},
	}
	require.NoError(t, catalog.Create(ctx, rt))

	stored, err := catalog.Get(ctx, "yasli_bakim")
	require.NoError(t, err)
	assert.Equal(t, "Yaşlı Bakım Raporu", stored.Name)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestCatalog_CreateValidation(t *testing.T) {
	catalog := NewCatalogService(newMockReportTypeStore())
	ctx := context.Background()

	assert.Error(t, catalog.Create(ctx, domain.ReportType{Name: "n", Questions: []string{"q"}}))
	assert.Error(t, catalog.Create(ctx, domain.ReportType{ID: "id", Questions: []string{"q"}}))
	assert.Error(t, catalog.Create(ctx, domain.ReportType{ID: "id", Name: "n"}))
}

func TestCatalog_CreateTruncatesKnowledgeBase(t *testing.T) {
	catalog := NewCatalogService(newMockReportTypeStore())
	ctx := context.Background()

	rt := domain.ReportType{
		ID:            "uzun_kb",
		Name:          "Uzun Bilgi Tabanı",
		Questions:     []string{"Soru?"},
		KnowledgeBase: strings.Repeat("a", domain.MaxKnowledgeBaseLen+500),
	}
	require.NoError(t, catalog.Create(ctx, rt))

	stored, err := catalog.Get(ctx, "uzun_kb")
	require.NoError(t, err)
	assert.Len(t, stored.KnowledgeBase, domain.MaxKnowledgeBaseLen)
}

func TestCatalog_Delete(t *testing.T) {
	catalog := NewCatalogService(newMockReportTypeStore())
	ctx := context.Background()

	require.NoError(t, catalog.EnsureDefaults(ctx))
	require.NoError(t, catalog.Delete(ctx, "ilk_gorusme"))

	_, err := catalog.Get(ctx, "ilk_gorusme")
	assert.ErrorIs(t, err, domain.ErrUnknownReportType)

	assert.ErrorIs(t, catalog.Delete(ctx, "ilk_gorusme"), domain.ErrUnknownReportType)
}
