package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

func TestAddVocabulary_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.AddVocabulary(ctx, testVocabulary("1", "asset")))

	err := db.AddVocabulary(ctx, testVocabulary("1", "liability"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// The original row must be untouched.
	vocab, err := db.GetVocabulary(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, vocab)
	assert.Equal(t, "asset", vocab.Word)
}

func TestUpdateVocabulary_CreatesWhenAbsent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.UpdateVocabulary(ctx, testVocabulary("7", "dividend")))

	vocab, err := db.GetVocabulary(ctx, "7")
	require.NoError(t, err)
	require.NotNil(t, vocab)
	assert.Equal(t, "dividend", vocab.Word)
}

func TestGetVocabulary_NotFoundReturnsNil(t *testing.T) {
	db := setupTestDB(t)

	vocab, err := db.GetVocabulary(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, vocab)
}

func TestDeleteVocabulary_MissingIsNoop(t *testing.T) {
	db := setupTestDB(t)

	err := db.DeleteVocabulary(context.Background(), "missing")
	assert.NoError(t, err)
}

func TestGetVocabulariesByCategoryAndDifficulty(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	vocab := testVocabulary("1", "asset")
	require.NoError(t, db.AddVocabulary(ctx, vocab))

	advanced := testVocabulary("2", "volatility")
	advanced.Difficulty = entities.DifficultyAdvanced
	advanced.Category = "trading"
	require.NoError(t, db.AddVocabulary(ctx, advanced))

	byCategory, err := db.GetVocabulariesByCategory(ctx, "finance")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "asset", byCategory[0].Word)

	byDifficulty, err := db.GetVocabulariesByDifficulty(ctx, entities.DifficultyAdvanced)
	require.NoError(t, err)
	require.Len(t, byDifficulty, 1)
	assert.Equal(t, "volatility", byDifficulty[0].Word)
}

func TestVocabularyTagsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	vocab := testVocabulary("1", "asset")
	vocab.Tags = entities.StringList{"accounting", "investment"}
	require.NoError(t, db.AddVocabulary(ctx, vocab))

	read, err := db.GetVocabulary(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.Equal(t, entities.StringList{"accounting", "investment"}, read.Tags)
}

func TestGenericPrimitives(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Set(ctx, "k1", *testVocabulary("ignored", "equity")))

	got, err := db.Get(ctx, "k1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "k1", got.ID)

	ok, err := db.Has(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, ok)

	keys, err := db.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"k1"}, keys)

	require.NoError(t, db.Remove(ctx, "k1"))
	ok, err = db.Has(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClear_WipesAllTables(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.AddVocabulary(ctx, testVocabulary("1", "asset")))
	require.NoError(t, db.UpdateUserSettings(ctx, entities.DefaultUserSettings("default-user")))
	require.NoError(t, db.UpdateLearningStats(ctx, "default-user", entities.NewLearningStats("default-user")))

	require.NoError(t, db.Clear(ctx))

	vocabularies, err := db.GetVocabularies(ctx)
	require.NoError(t, err)
	assert.Empty(t, vocabularies)

	settings, err := db.GetUserSettings(ctx, "default-user")
	require.NoError(t, err)
	assert.Nil(t, settings)

	stats, err := db.GetLearningStats(ctx, "default-user")
	require.NoError(t, err)
	assert.Nil(t, stats)
}
