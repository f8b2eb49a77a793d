package storage

import "context"

// Info summarizes the state of both layers for diagnostics.
type Info struct {
	VocabularyCount int64 `json:"vocabularyCount"`
	SchemaVersion   int   `json:"schemaVersion"`
	CacheKeys       int   `json:"cacheKeys"`
	CacheUsedBytes  int64 `json:"cacheUsedBytes"`
	CacheFreeBytes  int64 `json:"cacheFreeBytes"`
	CacheAvailable  bool  `json:"cacheAvailable"`
}

// GetStorageInfo never fails; unreadable figures report as zero.
func (s *Service) GetStorageInfo(ctx context.Context) Info {
	info := Info{
		SchemaVersion:  s.db.Version(),
		CacheAvailable: s.cache.IsAvailable(),
		CacheUsedBytes: s.cache.Size(),
		CacheFreeBytes: s.cache.RemainingSpace(),
	}
	count, err := s.db.CountVocabularies(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to count vocabularies")
	} else {
		info.VocabularyCount = count
	}
	if keys, err := s.cache.Keys(); err == nil {
		info.CacheKeys = len(keys)
	}
	return info
}
