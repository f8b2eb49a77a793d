package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/cache"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/data"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/database"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/storage"
)

func setupImportService(t *testing.T) *ImportService {
	t.Helper()

	dir := t.TempDir()
	db, err := database.New(database.Config{Path: filepath.Join(dir, "test.db")}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	kv := cache.New(cache.Config{Path: filepath.Join(dir, "cache.json")}, zerolog.Nop())
	return NewImportService(storage.New(db, kv, zerolog.Nop()), zerolog.Nop())
}

func TestImportInitialData_SeedsOnce(t *testing.T) {
	svc := setupImportService(t)
	ctx := context.Background()

	require.False(t, svc.IsDataImported(ctx))
	require.NoError(t, svc.ImportInitialData(ctx))
	require.True(t, svc.IsDataImported(ctx))

	stats, err := svc.GetDataStats(ctx)
	require.NoError(t, err)
	require.Equal(t, data.Count(), stats.TotalVocabularies)
	require.Equal(t, 21, stats.CategoryCounts["finance"])
	require.Equal(t, 12, stats.DifficultyCounts["beginner"])

	// A second import must be a no-op, not a duplicate-key failure.
	require.NoError(t, svc.ImportInitialData(ctx))
	stats, err = svc.GetDataStats(ctx)
	require.NoError(t, err)
	require.Equal(t, data.Count(), stats.TotalVocabularies)
}

func TestReimportData_RestoresDataset(t *testing.T) {
	svc := setupImportService(t)
	ctx := context.Background()

	require.NoError(t, svc.ImportInitialData(ctx))
	require.NoError(t, svc.storage.DeleteVocabulary(ctx, "1"))

	custom := entities.Vocabulary{
		ID: "custom-1", Word: "stagflation",
		Definition: "滞胀", Example: "Stagflation combines stagnation and inflation.",
		ExampleTranslation: "滞胀结合了停滞和通胀。",
		Difficulty:         entities.DifficultyAdvanced, Category: "economics",
	}
	require.NoError(t, svc.ImportCustomVocabularies(ctx, []entities.Vocabulary{custom}))

	require.NoError(t, svc.ReimportData(ctx))

	stats, err := svc.GetDataStats(ctx)
	require.NoError(t, err)
	require.Equal(t, data.Count(), stats.TotalVocabularies)
	require.Nil(t, svc.GetVocabulary(ctx, "custom-1"))
	require.NotNil(t, svc.GetVocabulary(ctx, "1"))
}

func TestImportCustomVocabularies_UpsertsAndGeneratesIDs(t *testing.T) {
	svc := setupImportService(t)
	ctx := context.Background()
	require.NoError(t, svc.ImportInitialData(ctx))

	updated := entities.Vocabulary{
		ID: "1", Word: "asset",
		Definition: "资产（更新）", Example: "Assets appear on the balance sheet.",
		ExampleTranslation: "资产出现在资产负债表上。",
		Difficulty:         entities.DifficultyBeginner, Category: "finance",
	}
	noID := entities.Vocabulary{
		Word:       "arbitrage",
		Definition: "套利", Example: "Arbitrage exploits price differences across markets.",
		ExampleTranslation: "套利利用市场间的价格差异。",
		Difficulty:         entities.DifficultyAdvanced, Category: "trading",
	}
	require.NoError(t, svc.ImportCustomVocabularies(ctx, []entities.Vocabulary{updated, noID}))

	got := svc.GetVocabulary(ctx, "1")
	require.NotNil(t, got)
	require.Equal(t, "资产（更新）", got.Definition)

	stats, err := svc.GetDataStats(ctx)
	require.NoError(t, err)
	require.Equal(t, data.Count()+1, stats.TotalVocabularies)
}

func TestImportCustomVocabularies_RejectsInvalid(t *testing.T) {
	svc := setupImportService(t)

	bad := entities.Vocabulary{ID: "x", Word: "orphan"}
	err := svc.ImportCustomVocabularies(context.Background(), []entities.Vocabulary{bad})
	require.Error(t, err)
	require.Contains(t, err.Error(), "position 1")
}

func TestValidateData(t *testing.T) {
	svc := setupImportService(t)
	ctx := context.Background()
	require.NoError(t, svc.ImportInitialData(ctx))

	result := svc.ValidateData(ctx)
	require.True(t, result.IsValid)
	require.Empty(t, result.Errors)

	// Write a broken row through the raw store and rescan.
	broken := entities.Vocabulary{
		ID: "broken", Word: "", Definition: "",
		Example: "e", ExampleTranslation: "t",
		Difficulty: "impossible", Category: "finance",
	}
	require.NoError(t, svc.storage.AddVocabulary(ctx, &broken))

	result = svc.ValidateData(ctx)
	require.False(t, result.IsValid)
	require.NotEmpty(t, result.Errors)
	joined := ""
	for _, e := range result.Errors {
		joined += e + "\n"
	}
	require.Contains(t, joined, "missing word")
	require.Contains(t, joined, "missing definition")
	require.Contains(t, joined, "invalid difficulty level")
}

func TestExportVocabularies(t *testing.T) {
	svc := setupImportService(t)
	ctx := context.Background()
	require.NoError(t, svc.ImportInitialData(ctx))

	vocabularies, err := svc.ExportVocabularies(ctx)
	require.NoError(t, err)
	require.Len(t, vocabularies, data.Count())
}
