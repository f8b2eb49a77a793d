package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

func TestBatch_CommitsAllOperations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	operations := []Operation{
		{Type: OpAdd, Table: TableVocabularies, Value: testVocabulary("1", "asset")},
		{Type: OpAdd, Table: TableVocabularies, Value: testVocabulary("2", "equity")},
		{Type: OpPut, Table: TableUserSettings, Value: entities.DefaultUserSettings("default-user")},
	}
	require.NoError(t, db.Batch(ctx, operations))

	vocabularies, err := db.GetVocabularies(ctx)
	require.NoError(t, err)
	assert.Len(t, vocabularies, 2)

	settings, err := db.GetUserSettings(ctx, "default-user")
	require.NoError(t, err)
	assert.NotNil(t, settings)
}

func TestBatch_RollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.AddVocabulary(ctx, testVocabulary("dup", "asset")))

	operations := []Operation{
		{Type: OpAdd, Table: TableVocabularies, Value: testVocabulary("new", "equity")},
		// Colliding id: the whole batch must fail.
		{Type: OpAdd, Table: TableVocabularies, Value: testVocabulary("dup", "liability")},
	}
	err := db.Batch(ctx, operations)
	require.Error(t, err)

	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 1, batchErr.Index)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// Nothing from the batch may have committed.
	vocab, err := db.GetVocabulary(ctx, "new")
	require.NoError(t, err)
	assert.Nil(t, vocab)

	existing, err := db.GetVocabulary(ctx, "dup")
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, "asset", existing.Word)
}

func TestBatch_DeleteByTableKey(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.AddVocabulary(ctx, testVocabulary("1", "asset")))
	require.NoError(t, db.UpdateUserSettings(ctx, entities.DefaultUserSettings("default-user")))

	operations := []Operation{
		{Type: OpDelete, Table: TableVocabularies, Key: "1"},
		{Type: OpDelete, Table: TableUserSettings, Key: "default-user"},
	}
	require.NoError(t, db.Batch(ctx, operations))

	vocab, err := db.GetVocabulary(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, vocab)

	settings, err := db.GetUserSettings(ctx, "default-user")
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestBatch_RejectsValueTableMismatch(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	operations := []Operation{
		{Type: OpAdd, Table: TableVocabularies, Value: testVocabulary("1", "asset")},
		// A progress row declared under the vocabularies table must not
		// be routed by its value type.
		{Type: OpPut, Table: TableVocabularies, Value: &entities.Progress{ID: "p1", UserID: "default-user", VocabularyID: "1"}},
	}
	err := db.Batch(ctx, operations)
	require.Error(t, err)

	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 1, batchErr.Index)

	// The mismatch aborts the whole batch.
	vocab, err := db.GetVocabulary(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, vocab)

	progress, err := db.GetUserProgress(ctx, "default-user")
	require.NoError(t, err)
	assert.Empty(t, progress)
}

func TestBatch_UnknownTableFails(t *testing.T) {
	db := setupTestDB(t)

	err := db.Batch(context.Background(), []Operation{
		{Type: OpDelete, Table: "nope", Key: "1"},
	})
	require.Error(t, err)

	var batchErr *BatchError
	assert.ErrorAs(t, err, &batchErr)
}
