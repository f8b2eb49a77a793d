package storage

import (
	"context"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

// GetUserSettings reads settings store-first with a cache fallback. A
// cache hit after a store miss is promoted back into the store so the
// next read takes the fast path again. When both layers miss it returns
// nil; the caller decides what a first run defaults to.
func (s *Service) GetUserSettings(ctx context.Context, userID string) *entities.UserSettings {
	settings, err := s.db.GetUserSettings(ctx, userID)
	if err != nil {
		s.log.Error().Str("userId", userID).Err(err).Msg("failed to get settings from store")
	} else if settings != nil {
		return settings
	}

	var cached entities.UserSettings
	if s.cache.Get(KeyUserSettings, &cached) {
		cached.UserID = userID
		if err := s.db.UpdateUserSettings(ctx, &cached); err != nil {
			s.log.Warn().Str("userId", userID).Err(err).Msg("failed to promote cached settings to store")
		}
		return &cached
	}

	return nil
}

// SaveUserSettings fans the write out to both layers. Both must succeed;
// a failed cache write after a successful store write is still reported
// so the caller knows the fallback copy is stale.
func (s *Service) SaveUserSettings(ctx context.Context, settings *entities.UserSettings) error {
	if err := s.db.UpdateUserSettings(ctx, settings); err != nil {
		return err
	}
	if err := s.cache.Set(KeyUserSettings, settings); err != nil {
		s.log.Error().Str("userId", settings.UserID).Err(err).Msg("failed to back up settings to cache")
		return err
	}
	return nil
}
