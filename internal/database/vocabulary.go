package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

// GetVocabularies returns every vocabulary row.
func (d *Database) GetVocabularies(ctx context.Context) ([]entities.Vocabulary, error) {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	var vocabularies []entities.Vocabulary
	if err := db.Find(&vocabularies).Error; err != nil {
		return nil, opErr("get", "vocabularies", err)
	}
	return vocabularies, nil
}

// GetVocabulary returns the vocabulary with the given id, or nil when the
// id is unknown.
func (d *Database) GetVocabulary(ctx context.Context, id string) (*entities.Vocabulary, error) {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	var vocabulary entities.Vocabulary
	err := db.First(&vocabulary, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, opErr("get", "vocabularies", err)
	}
	return &vocabulary, nil
}

// GetVocabulariesByCategory returns vocabularies in one category via the
// category index.
func (d *Database) GetVocabulariesByCategory(ctx context.Context, category string) ([]entities.Vocabulary, error) {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	var vocabularies []entities.Vocabulary
	if err := db.Where("category = ?", category).Find(&vocabularies).Error; err != nil {
		return nil, opErr("get", "vocabularies", err)
	}
	return vocabularies, nil
}

// GetVocabulariesByDifficulty returns vocabularies at one difficulty level.
func (d *Database) GetVocabulariesByDifficulty(ctx context.Context, difficulty entities.Difficulty) ([]entities.Vocabulary, error) {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	var vocabularies []entities.Vocabulary
	if err := db.Where("difficulty = ?", difficulty).Find(&vocabularies).Error; err != nil {
		return nil, opErr("get", "vocabularies", err)
	}
	return vocabularies, nil
}

// AddVocabulary inserts a new vocabulary. Fails with ErrDuplicateKey when
// the id already exists.
func (d *Database) AddVocabulary(ctx context.Context, vocabulary *entities.Vocabulary) error {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	return opErr("add", "vocabularies", db.Create(vocabulary).Error)
}

// UpdateVocabulary writes the vocabulary with put semantics: it creates
// the row when absent.
func (d *Database) UpdateVocabulary(ctx context.Context, vocabulary *entities.Vocabulary) error {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	return opErr("put", "vocabularies", db.Save(vocabulary).Error)
}

// DeleteVocabulary removes the vocabulary row. Deleting a missing id is a
// no-op success.
func (d *Database) DeleteVocabulary(ctx context.Context, id string) error {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	return opErr("delete", "vocabularies", db.Delete(&entities.Vocabulary{}, "id = ?", id).Error)
}

// CountVocabularies returns the number of vocabulary rows.
func (d *Database) CountVocabularies(ctx context.Context) (int64, error) {
	db, cancel := d.withTimeout(ctx)
	defer cancel()

	var count int64
	if err := db.Model(&entities.Vocabulary{}).Count(&count).Error; err != nil {
		return 0, opErr("count", "vocabularies", err)
	}
	return count, nil
}
