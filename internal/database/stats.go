package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

// GetLearningStats returns the user's single statistics row, or nil when
// the user has none yet.
func (d *Database) GetLearningStats(ctx context.Context, userID string) (*entities.LearningStats, error) {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	var stats entities.LearningStats
	err := db.First(&stats, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, opErr("get", "learning_stats", err)
	}
	return &stats, nil
}

// UpdateLearningStats upserts the user's statistics row.
func (d *Database) UpdateLearningStats(ctx context.Context, userID string, stats *entities.LearningStats) error {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	stats.UserID = userID
	return opErr("put", "learning_stats", db.Save(stats).Error)
}
