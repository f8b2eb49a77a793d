package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

// GetCollections returns every collection owned by the user via the
// userId index.
func (d *Database) GetCollections(ctx context.Context, userID string) ([]entities.Collection, error) {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	var collections []entities.Collection
	if err := db.Where("user_id = ?", userID).Find(&collections).Error; err != nil {
		return nil, opErr("get", "collections", err)
	}
	return collections, nil
}

// GetCollectionsByType returns the user's collections of one type.
func (d *Database) GetCollectionsByType(ctx context.Context, userID string, typ entities.CollectionType) ([]entities.Collection, error) {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	var collections []entities.Collection
	if err := db.Where("user_id = ? AND type = ?", userID, typ).Find(&collections).Error; err != nil {
		return nil, opErr("get", "collections", err)
	}
	return collections, nil
}

// GetCollection returns the collection with the given id, or nil when the
// id is unknown.
func (d *Database) GetCollection(ctx context.Context, id string) (*entities.Collection, error) {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	var collection entities.Collection
	err := db.First(&collection, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, opErr("get", "collections", err)
	}
	return &collection, nil
}

// UpdateCollection upserts a collection. Both create and update call sites
// use this method; an existing id is overwritten, never rejected.
func (d *Database) UpdateCollection(ctx context.Context, collection *entities.Collection) error {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	return opErr("put", "collections", db.Save(collection).Error)
}

// DeleteCollection removes the collection row. Missing ids are a no-op.
func (d *Database) DeleteCollection(ctx context.Context, id string) error {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	return opErr("delete", "collections", db.Delete(&entities.Collection{}, "id = ?", id).Error)
}
