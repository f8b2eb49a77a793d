// Package services holds the business logic sitting between the storage
// façade and the application: dataset import, integrity validation and
// dataset statistics.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/data"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/storage"
)

// ImportService seeds and maintains the vocabulary dataset.
type ImportService struct {
	storage *storage.Service
	log     zerolog.Logger
}

func NewImportService(storage *storage.Service, log zerolog.Logger) *ImportService {
	return &ImportService{
		storage: storage,
		log:     log,
	}
}

// IsDataImported reports whether the store already holds vocabularies.
// Lookup failures read as not-imported so startup proceeds to seeding.
func (s *ImportService) IsDataImported(ctx context.Context) bool {
	vocabularies, err := s.storage.GetVocabularies(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to check import state")
		return false
	}
	return len(vocabularies) > 0
}

// ImportInitialData seeds the built-in dataset. Already-seeded stores are
// left untouched. Entries are added one at a time so a partial seed can
// be observed and resumed rather than rolled back.
func (s *ImportService) ImportInitialData(ctx context.Context) error {
	if s.IsDataImported(ctx) {
		s.log.Info().Msg("vocabulary data already present, skipping import")
		return nil
	}

	vocabularies := data.FinancialVocabulary()
	for i := range vocabularies {
		if err := s.storage.AddVocabulary(ctx, &vocabularies[i]); err != nil {
			return fmt.Errorf("failed to import vocabulary %q: %w", vocabularies[i].Word, err)
		}
	}
	s.log.Info().Int("count", len(vocabularies)).Msg("imported initial vocabulary data")
	return nil
}

// ReimportData wipes the vocabulary table and seeds it again.
func (s *ImportService) ReimportData(ctx context.Context) error {
	vocabularies, err := s.storage.GetVocabularies(ctx)
	if err != nil {
		return fmt.Errorf("failed to list vocabularies: %w", err)
	}
	for i := range vocabularies {
		if err := s.storage.DeleteVocabulary(ctx, vocabularies[i].ID); err != nil {
			return fmt.Errorf("failed to delete vocabulary %q: %w", vocabularies[i].ID, err)
		}
	}
	return s.ImportInitialData(ctx)
}

// ImportCustomVocabularies upserts user-supplied entries. Entries without
// an id get a generated one. Every entry is validated before any write
// happens.
func (s *ImportService) ImportCustomVocabularies(ctx context.Context, vocabularies []entities.Vocabulary) error {
	for i := range vocabularies {
		if vocabularies[i].ID == "" {
			vocabularies[i].ID = uuid.NewString()
		}
		if errs := validateVocabulary(&vocabularies[i], i); len(errs) > 0 {
			return fmt.Errorf("invalid vocabulary at position %d: %s", i+1, errs[0])
		}
	}

	for i := range vocabularies {
		if err := s.storage.UpdateVocabulary(ctx, &vocabularies[i]); err != nil {
			return fmt.Errorf("failed to import custom vocabulary %q: %w", vocabularies[i].Word, err)
		}
	}
	s.log.Info().Int("count", len(vocabularies)).Msg("imported custom vocabularies")
	return nil
}

// GetVocabulary returns the entry with the given id, nil when absent.
func (s *ImportService) GetVocabulary(ctx context.Context, id string) *entities.Vocabulary {
	return s.storage.GetVocabulary(ctx, id)
}

// ExportVocabularies returns every stored entry.
func (s *ImportService) ExportVocabularies(ctx context.Context) ([]entities.Vocabulary, error) {
	vocabularies, err := s.storage.GetVocabularies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export vocabularies: %w", err)
	}
	s.log.Info().Int("count", len(vocabularies)).Msg("exported vocabularies")
	return vocabularies, nil
}

// DataStats summarizes the stored dataset.
type DataStats struct {
	TotalVocabularies int            `json:"totalVocabularies"`
	CategoryCounts    map[string]int `json:"categoryCounts"`
	DifficultyCounts  map[string]int `json:"difficultyCounts"`
}

// GetDataStats counts entries per category and difficulty.
func (s *ImportService) GetDataStats(ctx context.Context) (*DataStats, error) {
	vocabularies, err := s.storage.GetVocabularies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute data stats: %w", err)
	}

	stats := &DataStats{
		TotalVocabularies: len(vocabularies),
		CategoryCounts:    map[string]int{},
		DifficultyCounts:  map[string]int{},
	}
	for _, v := range vocabularies {
		stats.CategoryCounts[v.Category]++
		stats.DifficultyCounts[string(v.Difficulty)]++
	}
	return stats, nil
}
