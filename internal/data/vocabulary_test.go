package data

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

func TestDatasetShape(t *testing.T) {
	require.Equal(t, 40, Count())
	require.Len(t, ByCategory("finance"), 21)
	require.Len(t, ByDifficulty(entities.DifficultyBeginner), 12)
	require.Len(t, ByDifficulty(entities.DifficultyIntermediate), 17)
	require.Len(t, ByDifficulty(entities.DifficultyAdvanced), 11)
}

func TestDatasetIntegrity(t *testing.T) {
	seen := map[string]bool{}
	for _, v := range FinancialVocabulary() {
		require.NotEmpty(t, v.ID)
		require.False(t, seen[v.ID], "duplicate id %s", v.ID)
		seen[v.ID] = true

		require.NotEmpty(t, v.Word)
		require.NotEmpty(t, v.Definition)
		require.NotEmpty(t, v.Category)
		require.True(t, v.Difficulty.Valid(), "bad difficulty on %s", v.Word)
		require.False(t, v.CreatedAt.IsZero())
	}
}

func TestFinancialVocabulary_ReturnsCopy(t *testing.T) {
	first := FinancialVocabulary()
	first[0].Word = "mutated"

	second := FinancialVocabulary()
	require.Equal(t, "asset", second[0].Word)
}

func TestSearch(t *testing.T) {
	require.NotEmpty(t, Search("ASSET"))
	require.NotEmpty(t, Search("通胀"))     // matches definition
	require.NotEmpty(t, Search("hedging")) // matches tag
	require.Empty(t, Search("blockchain"))
}

func TestCategories(t *testing.T) {
	categories := Categories()
	require.Contains(t, categories, "finance")
	require.Contains(t, categories, "trading")
	require.Contains(t, categories, "forex")
	require.Contains(t, categories, "derivatives")
	require.Contains(t, categories, "economics")
}
