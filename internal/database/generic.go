package database

import (
	"context"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

// Generic single-table primitives. They operate on the vocabularies table;
// the entity-specific accessors are preferred for everything else.

// Get returns the vocabulary stored under key, or nil when absent.
func (d *Database) Get(ctx context.Context, key string) (*entities.Vocabulary, error) {
	return d.GetVocabulary(ctx, key)
}

// Set stores the value under key with put semantics.
func (d *Database) Set(ctx context.Context, key string, value entities.Vocabulary) error {
	value.ID = key
	return d.UpdateVocabulary(ctx, &value)
}

// Remove deletes the row under key; missing keys are a no-op success.
func (d *Database) Remove(ctx context.Context, key string) error {
	return d.DeleteVocabulary(ctx, key)
}

// Has reports whether a row exists under key.
func (d *Database) Has(ctx context.Context, key string) (bool, error) {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	var count int64
	if err := db.Model(&entities.Vocabulary{}).Where("id = ?", key).Count(&count).Error; err != nil {
		return false, opErr("has", "vocabularies", err)
	}
	return count > 0, nil
}

// Keys returns every stored key.
func (d *Database) Keys(ctx context.Context) ([]string, error) {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	var keys []string
	if err := db.Model(&entities.Vocabulary{}).Pluck("id", &keys).Error; err != nil {
		return nil, opErr("keys", "vocabularies", err)
	}
	return keys, nil
}

// Clear wipes all five entity tables.
func (d *Database) Clear(ctx context.Context) error {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	for _, model := range []any{
		&entities.Vocabulary{},
		&entities.Progress{},
		&entities.Collection{},
		&entities.LearningStats{},
		&entities.UserSettings{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return opErr("clear", "all", err)
		}
	}
	return nil
}
