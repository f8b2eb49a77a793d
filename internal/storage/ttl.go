package storage

import (
	"encoding/json"
	"time"
)

// CacheEntry wraps a cached value with its write time and lifetime, both
// in milliseconds. A zero TTL never expires.
type CacheEntry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
	TTL       int64           `json:"ttl,omitempty"`
}

func (e CacheEntry) expired(now time.Time) bool {
	if e.TTL <= 0 {
		return false
	}
	return now.UnixMilli()-e.Timestamp > e.TTL
}

// SetCacheData stores value under key wrapped in a TTL envelope.
func (s *Service) SetCacheData(key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := CacheEntry{
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
		TTL:       ttl.Milliseconds(),
	}
	return s.cache.Set(key, entry)
}

// GetCacheData reads a TTL envelope into dst. Expired entries are removed
// on read and treated as absent.
func (s *Service) GetCacheData(key string, dst any) bool {
	var entry CacheEntry
	if !s.cache.Get(key, &entry) {
		return false
	}
	if entry.expired(time.Now()) {
		if err := s.cache.Remove(key); err != nil {
			s.log.Warn().Str("key", key).Err(err).Msg("failed to drop expired cache entry")
		}
		return false
	}
	if err := json.Unmarshal(entry.Data, dst); err != nil {
		s.log.Error().Str("key", key).Err(err).Msg("failed to decode cache entry")
		return false
	}
	return true
}

// IsCacheValid reports whether key holds an unexpired envelope, without
// decoding or evicting it.
func (s *Service) IsCacheValid(key string) bool {
	var entry CacheEntry
	if !s.cache.Get(key, &entry) {
		return false
	}
	return !entry.expired(time.Now())
}

// ClearExpiredCache scans every key and evicts envelopes past their TTL.
// Values that do not decode as envelopes are left alone.
func (s *Service) ClearExpiredCache() int {
	removed := 0
	now := time.Now()
	keys, err := s.cache.Keys()
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to list cache keys")
		return 0
	}
	for _, key := range keys {
		raw := s.cache.GetRaw(key)
		if raw == nil {
			continue
		}
		var entry CacheEntry
		if err := json.Unmarshal(raw, &entry); err != nil || entry.Timestamp == 0 {
			continue
		}
		if entry.expired(now) {
			if err := s.cache.Remove(key); err != nil {
				s.log.Warn().Str("key", key).Err(err).Msg("failed to evict expired cache entry")
				continue
			}
			removed++
		}
	}
	return removed
}
