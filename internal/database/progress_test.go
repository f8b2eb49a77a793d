package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

func testProgress(id, userID, vocabularyID string) *entities.Progress {
	now := time.Now()
	return &entities.Progress{
		ID:           id,
		VocabularyID: vocabularyID,
		UserID:       userID,
		Status:       entities.StatusNew,
		EaseFactor:   2.5,
		NextReviewAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserProgress_UpsertAndIndexScan(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.UpdateUserProgress(ctx, testProgress("p1", "default-user", "1")))
	require.NoError(t, db.UpdateUserProgress(ctx, testProgress("p2", "default-user", "2")))
	require.NoError(t, db.UpdateUserProgress(ctx, testProgress("p3", "someone-else", "1")))

	progress, err := db.GetUserProgress(ctx, "default-user")
	require.NoError(t, err)
	assert.Len(t, progress, 2)

	// Upsert updates in place.
	updated := testProgress("p1", "default-user", "1")
	updated.CorrectCount = 3
	updated.Status = entities.StatusLearning
	require.NoError(t, db.UpdateUserProgress(ctx, updated))

	progress, err = db.GetUserProgress(ctx, "default-user")
	require.NoError(t, err)
	assert.Len(t, progress, 2)
	for _, p := range progress {
		if p.ID == "p1" {
			assert.Equal(t, 3, p.CorrectCount)
			assert.Equal(t, entities.StatusLearning, p.Status)
		}
	}
}

func TestGetDueProgress(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	now := time.Now()

	due := testProgress("p1", "default-user", "1")
	due.NextReviewAt = now.Add(-time.Hour)
	require.NoError(t, db.UpdateUserProgress(ctx, due))

	future := testProgress("p2", "default-user", "2")
	future.NextReviewAt = now.Add(24 * time.Hour)
	require.NoError(t, db.UpdateUserProgress(ctx, future))

	dueList, err := db.GetDueProgress(ctx, "default-user", now)
	require.NoError(t, err)
	require.Len(t, dueList, 1)
	assert.Equal(t, "p1", dueList[0].ID)
}

func TestGetProgressByStatus(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	mastered := testProgress("p1", "default-user", "1")
	mastered.Status = entities.StatusMastered
	require.NoError(t, db.UpdateUserProgress(ctx, mastered))
	require.NoError(t, db.UpdateUserProgress(ctx, testProgress("p2", "default-user", "2")))

	byStatus, err := db.GetProgressByStatus(ctx, "default-user", entities.StatusMastered)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "p1", byStatus[0].ID)
}

func TestGetUserProgress_EmptyForUnknownUser(t *testing.T) {
	db := setupTestDB(t)

	progress, err := db.GetUserProgress(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, progress)
}
