package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

// DataBundle is the portable snapshot produced by ExportAllData. Every
// section is optional on import.
type DataBundle struct {
	ExportedAt   time.Time                  `json:"exportedAt"`
	Vocabularies []entities.Vocabulary      `json:"vocabularies,omitempty"`
	Progress     []entities.Progress        `json:"progress,omitempty"`
	Collections  []entities.Collection      `json:"collections,omitempty"`
	Stats        *entities.LearningStats    `json:"stats,omitempty"`
	Settings     *entities.UserSettings     `json:"settings,omitempty"`
	Cache        map[string]json.RawMessage `json:"cache,omitempty"`
}

// ExportAllData snapshots every entity for the user. Sections are
// gathered independently; a failing section is logged and left empty
// rather than failing the whole export.
func (s *Service) ExportAllData(ctx context.Context, userID string) (*DataBundle, error) {
	bundle := &DataBundle{ExportedAt: time.Now()}

	vocabularies, err := s.db.GetVocabularies(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("export: failed to read vocabularies")
	} else {
		bundle.Vocabularies = vocabularies
	}

	bundle.Progress = s.GetUserProgress(ctx, userID)
	bundle.Collections = s.GetCollections(ctx, userID)
	bundle.Stats = s.GetLearningStats(ctx, userID)

	bundle.Settings = s.GetUserSettings(ctx, userID)

	dump, err := s.cache.Export()
	if err != nil {
		s.log.Error().Err(err).Msg("export: failed to dump cache")
	} else {
		bundle.Cache = dump
	}

	return bundle, nil
}

// ImportAllData restores a bundle. Sections import independently so a
// bad section does not block the others; the first error is returned
// after all sections have been attempted. The cache section merges
// non-destructively, existing keys win unless overwrite is set.
func (s *Service) ImportAllData(ctx context.Context, userID string, bundle *DataBundle, overwrite bool) error {
	var firstErr error
	fail := func(err error, section string) {
		s.log.Error().Str("section", section).Err(err).Msg("import: section failed")
		if firstErr == nil {
			firstErr = err
		}
	}

	if len(bundle.Vocabularies) > 0 {
		if err := s.AddVocabularies(ctx, bundle.Vocabularies); err != nil {
			fail(err, "vocabularies")
		}
	}
	if len(bundle.Progress) > 0 {
		for i := range bundle.Progress {
			bundle.Progress[i].UserID = userID
		}
		if err := s.UpdateUserProgressBatch(ctx, bundle.Progress); err != nil {
			fail(err, "progress")
		}
	}
	for i := range bundle.Collections {
		bundle.Collections[i].UserID = userID
		if err := s.db.UpdateCollection(ctx, &bundle.Collections[i]); err != nil {
			fail(err, "collections")
			break
		}
	}
	if bundle.Stats != nil {
		if err := s.db.UpdateLearningStats(ctx, userID, bundle.Stats); err != nil {
			fail(err, "stats")
		}
	}
	if bundle.Settings != nil {
		bundle.Settings.UserID = userID
		if err := s.SaveUserSettings(ctx, bundle.Settings); err != nil {
			fail(err, "settings")
		}
	}
	if len(bundle.Cache) > 0 {
		if err := s.cache.Import(bundle.Cache, overwrite); err != nil {
			fail(err, "cache")
		}
	}
	return firstErr
}

// ClearAllData wipes both layers.
func (s *Service) ClearAllData(ctx context.Context) error {
	if err := s.db.Clear(ctx); err != nil {
		return err
	}
	return s.cache.Clear()
}
