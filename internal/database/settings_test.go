package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

func TestUserSettings_UpsertAndRead(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	settings := entities.DefaultUserSettings("default-user")
	require.NoError(t, db.UpdateUserSettings(ctx, settings))

	read, err := db.GetUserSettings(ctx, "default-user")
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.Equal(t, "zh-CN", read.Language)

	settings.Theme = "dark"
	settings.DailyGoal = 25
	require.NoError(t, db.UpdateUserSettings(ctx, settings))

	read, err = db.GetUserSettings(ctx, "default-user")
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.Equal(t, "dark", read.Theme)
	assert.Equal(t, 25, read.DailyGoal)
}

func TestUserSettings_NotFoundReturnsNil(t *testing.T) {
	db := setupTestDB(t)

	settings, err := db.GetUserSettings(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestLearningStats_SingleRowPerUser(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stats := entities.NewLearningStats("default-user")
	stats.Overall.TotalWordsLearned = 5
	require.NoError(t, db.UpdateLearningStats(ctx, "default-user", stats))

	stats.Overall.TotalWordsLearned = 9
	stats.Daily = append(stats.Daily, entities.DailyStats{Date: "2024-06-01", WordsReviewed: 4})
	require.NoError(t, db.UpdateLearningStats(ctx, "default-user", stats))

	read, err := db.GetLearningStats(ctx, "default-user")
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.Equal(t, 9, read.Overall.TotalWordsLearned)
	require.Len(t, read.Daily, 1)
	assert.Equal(t, "2024-06-01", read.Daily[0].Date)
	assert.Len(t, read.LevelProgress, 3)
}

func TestLearningStats_NotFoundReturnsNil(t *testing.T) {
	db := setupTestDB(t)

	stats, err := db.GetLearningStats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, stats)
}
