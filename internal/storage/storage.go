// Package storage is the unified façade over the structured store and the
// key-value cache. The structured store is authoritative for every
// entity; the cache backs up user settings for cold-boot fallback and
// holds ephemeral TTL-tagged values.
//
// Reads degrade gracefully (absorb errors, return zero values, log);
// writes always propagate failures. The asymmetry is deliberate: a
// missing read falls back to defaults, a silently dropped write loses
// user data.
package storage

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/cache"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/database"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

type Service struct {
	db    *database.Database
	cache *cache.Cache
	log   zerolog.Logger
}

func New(db *database.Database, kv *cache.Cache, log zerolog.Logger) *Service {
	return &Service{
		db:    db,
		cache: kv,
		log:   log,
	}
}

// Cache exposes the key-value layer for callers that need it directly.
func (s *Service) Cache() *cache.Cache {
	return s.cache
}

// ==================== generic primitives ====================

// Get returns the vocabulary under key. Read failures are absorbed to nil.
func (s *Service) Get(ctx context.Context, key string) *entities.Vocabulary {
	vocab, err := s.db.Get(ctx, key)
	if err != nil {
		s.log.Error().Str("key", key).Err(err).Msg("failed to get item")
		return nil
	}
	return vocab
}

// Set stores the value under key; write failures propagate.
func (s *Service) Set(ctx context.Context, key string, value entities.Vocabulary) error {
	return s.db.Set(ctx, key, value)
}

// Remove deletes the row under key; write failures propagate.
func (s *Service) Remove(ctx context.Context, key string) error {
	return s.db.Remove(ctx, key)
}

// Clear wipes the structured store.
func (s *Service) Clear(ctx context.Context) error {
	return s.db.Clear(ctx)
}

// Keys lists the stored keys; read failures are absorbed to empty.
func (s *Service) Keys(ctx context.Context) []string {
	keys, err := s.db.Keys(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list keys")
		return nil
	}
	return keys
}

// Has reports key existence; lookup failures read as false.
func (s *Service) Has(ctx context.Context, key string) bool {
	ok, err := s.db.Has(ctx, key)
	if err != nil {
		s.log.Error().Str("key", key).Err(err).Msg("failed to check key existence")
		return false
	}
	return ok
}

// ==================== vocabularies ====================

func (s *Service) GetVocabularies(ctx context.Context) ([]entities.Vocabulary, error) {
	return s.db.GetVocabularies(ctx)
}

// GetVocabulary absorbs read failures to nil.
func (s *Service) GetVocabulary(ctx context.Context, id string) *entities.Vocabulary {
	vocab, err := s.db.GetVocabulary(ctx, id)
	if err != nil {
		s.log.Error().Str("id", id).Err(err).Msg("failed to get vocabulary")
		return nil
	}
	return vocab
}

func (s *Service) GetVocabulariesByCategory(ctx context.Context, category string) ([]entities.Vocabulary, error) {
	return s.db.GetVocabulariesByCategory(ctx, category)
}

func (s *Service) GetVocabulariesByDifficulty(ctx context.Context, difficulty entities.Difficulty) ([]entities.Vocabulary, error) {
	return s.db.GetVocabulariesByDifficulty(ctx, difficulty)
}

func (s *Service) AddVocabulary(ctx context.Context, vocabulary *entities.Vocabulary) error {
	return s.db.AddVocabulary(ctx, vocabulary)
}

func (s *Service) UpdateVocabulary(ctx context.Context, vocabulary *entities.Vocabulary) error {
	return s.db.UpdateVocabulary(ctx, vocabulary)
}

func (s *Service) DeleteVocabulary(ctx context.Context, id string) error {
	return s.db.DeleteVocabulary(ctx, id)
}

// AddVocabularies inserts the batch atomically.
func (s *Service) AddVocabularies(ctx context.Context, vocabularies []entities.Vocabulary) error {
	operations := make([]database.Operation, 0, len(vocabularies))
	for i := range vocabularies {
		operations = append(operations, database.Operation{
			Type:  database.OpAdd,
			Table: database.TableVocabularies,
			Value: &vocabularies[i],
		})
	}
	return s.db.Batch(ctx, operations)
}

// ==================== user progress ====================

// GetUserProgress absorbs read failures to an empty slice.
func (s *Service) GetUserProgress(ctx context.Context, userID string) []entities.Progress {
	progress, err := s.db.GetUserProgress(ctx, userID)
	if err != nil {
		s.log.Error().Str("userId", userID).Err(err).Msg("failed to get user progress")
		return nil
	}
	return progress
}

// GetVocabularyProgress returns the user's record for one vocabulary, or
// nil when the pair has never been reviewed. Unknown vocabulary ids are
// not an error.
func (s *Service) GetVocabularyProgress(ctx context.Context, userID, vocabularyID string) *entities.Progress {
	for _, p := range s.GetUserProgress(ctx, userID) {
		if p.VocabularyID == vocabularyID {
			progress := p
			return &progress
		}
	}
	return nil
}

// GetDueProgress returns the records scheduled for review at or before due.
func (s *Service) GetDueProgress(ctx context.Context, userID string, due time.Time) ([]entities.Progress, error) {
	return s.db.GetDueProgress(ctx, userID, due)
}

func (s *Service) UpdateUserProgress(ctx context.Context, progress *entities.Progress) error {
	return s.db.UpdateUserProgress(ctx, progress)
}

// UpdateUserProgressBatch puts the records atomically.
func (s *Service) UpdateUserProgressBatch(ctx context.Context, progress []entities.Progress) error {
	operations := make([]database.Operation, 0, len(progress))
	for i := range progress {
		operations = append(operations, database.Operation{
			Type:  database.OpPut,
			Table: database.TableUserProgress,
			Value: &progress[i],
		})
	}
	return s.db.Batch(ctx, operations)
}

// ==================== collections ====================

// GetCollections absorbs read failures to an empty slice.
func (s *Service) GetCollections(ctx context.Context, userID string) []entities.Collection {
	collections, err := s.db.GetCollections(ctx, userID)
	if err != nil {
		s.log.Error().Str("userId", userID).Err(err).Msg("failed to get collections")
		return nil
	}
	return collections
}

// AddCollection and UpdateCollection share upsert semantics; the caller
// is responsible for distinguishing creation from update.
func (s *Service) AddCollection(ctx context.Context, collection *entities.Collection) error {
	return s.db.UpdateCollection(ctx, collection)
}

func (s *Service) UpdateCollection(ctx context.Context, collection *entities.Collection) error {
	return s.db.UpdateCollection(ctx, collection)
}

func (s *Service) DeleteCollection(ctx context.Context, id string) error {
	return s.db.DeleteCollection(ctx, id)
}

// ==================== learning stats ====================

// GetLearningStats absorbs read failures to nil.
func (s *Service) GetLearningStats(ctx context.Context, userID string) *entities.LearningStats {
	stats, err := s.db.GetLearningStats(ctx, userID)
	if err != nil {
		s.log.Error().Str("userId", userID).Err(err).Msg("failed to get learning stats")
		return nil
	}
	return stats
}

func (s *Service) UpdateLearningStats(ctx context.Context, userID string, stats *entities.LearningStats) error {
	return s.db.UpdateLearningStats(ctx, userID, stats)
}
