package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

// GetUserSettings returns the user's settings row, or nil when the user
// has none. The façade layers a cache fallback on top of this.
func (d *Database) GetUserSettings(ctx context.Context, userID string) (*entities.UserSettings, error) {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	var settings entities.UserSettings
	err := db.First(&settings, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, opErr("get", "user_settings", err)
	}
	return &settings, nil
}

// UpdateUserSettings upserts the user's settings row.
func (d *Database) UpdateUserSettings(ctx context.Context, settings *entities.UserSettings) error {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	return opErr("put", "user_settings", db.Save(settings).Error)
}
