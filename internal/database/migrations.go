package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

// SchemaVersion is the version new databases are created at.
const SchemaVersion = 1

// schemaInfo tracks which migration steps have been applied.
type schemaInfo struct {
	Version   int `gorm:"primaryKey"`
	AppliedAt time.Time
}

func (schemaInfo) TableName() string {
	return "schema_info"
}

// migration is one ordered schema step, tagged with the version that
// introduces it. Steps must be idempotent: creating a table or index that
// already exists is a no-op, not an error.
type migration struct {
	Version int
	Name    string
	Apply   func(tx *gorm.DB) error
}

var migrations = []migration{
	{
		Version: 1,
		Name:    "create core tables",
		Apply: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&entities.Vocabulary{},
				&entities.Progress{},
				&entities.Collection{},
				&entities.LearningStats{},
				&entities.UserSettings{},
			)
		},
	},
}

// migrate applies every registered step above the recorded version, up to
// and including target.
func (d *Database) migrate(target int) error {
	if err := d.db.AutoMigrate(&schemaInfo{}); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	current := 0
	var applied []schemaInfo
	if err := d.db.Order("version DESC").Limit(1).Find(&applied).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if len(applied) > 0 {
		current = applied[0].Version
	}

	for _, m := range migrations {
		if m.Version <= current || m.Version > target {
			continue
		}
		err := d.db.Transaction(func(tx *gorm.DB) error {
			if err := m.Apply(tx); err != nil {
				return err
			}
			return tx.Create(&schemaInfo{Version: m.Version, AppliedAt: time.Now()}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		current = m.Version
		d.log.Info().Int("version", m.Version).Str("name", m.Name).Msg("applied migration")
	}

	if current < target {
		return fmt.Errorf("no migration registered for version %d", target)
	}

	d.version = current
	return nil
}
