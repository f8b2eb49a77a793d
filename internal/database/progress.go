package database

import (
	"context"
	"time"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

// GetUserProgress returns every progress record for the user via the
// userId index.
func (d *Database) GetUserProgress(ctx context.Context, userID string) ([]entities.Progress, error) {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	var progress []entities.Progress
	if err := db.Where("user_id = ?", userID).Find(&progress).Error; err != nil {
		return nil, opErr("get", "user_progress", err)
	}
	return progress, nil
}

// GetDueProgress returns the user's records whose next review is not after
// the given time, via the nextReviewAt index.
func (d *Database) GetDueProgress(ctx context.Context, userID string, due time.Time) ([]entities.Progress, error) {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	var progress []entities.Progress
	err := db.Where("user_id = ? AND next_review_at <= ?", userID, due).
		Order("next_review_at ASC").Find(&progress).Error
	if err != nil {
		return nil, opErr("get", "user_progress", err)
	}
	return progress, nil
}

// GetProgressByStatus returns the user's records in one learning status.
func (d *Database) GetProgressByStatus(ctx context.Context, userID string, status entities.LearningStatus) ([]entities.Progress, error) {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	var progress []entities.Progress
	if err := db.Where("user_id = ? AND status = ?", userID, status).Find(&progress).Error; err != nil {
		return nil, opErr("get", "user_progress", err)
	}
	return progress, nil
}

// UpdateUserProgress upserts a progress record.
func (d *Database) UpdateUserProgress(ctx context.Context, progress *entities.Progress) error {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	return opErr("put", "user_progress", db.Save(progress).Error)
}
