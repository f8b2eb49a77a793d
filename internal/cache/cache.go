// Package cache implements the key-value cache: a flat, string-keyed,
// JSON-serialized store backed by a single document file. It is the
// secondary persistence layer; the structured store owns the canonical
// copy of everything except its settings backup.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// DefaultQuota mirrors the ~5MB budget browsers grant localStorage.
const DefaultQuota = 5 * 1024 * 1024

const probeKey = "__cache_probe__"

type Config struct {
	Path  string
	Quota int64
}

// Cache is safe for concurrent use within one process. Every operation
// re-reads the backing file, so writes from other processes are observed;
// OnChange can be used to get notified of them.
type Cache struct {
	path  string
	quota int64
	mu    sync.Mutex
	log   zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Cache {
	if cfg.Quota <= 0 {
		cfg.Quota = DefaultQuota
	}
	return &Cache{
		path:  cfg.Path,
		quota: cfg.Quota,
		log:   log,
	}
}

// load parses the backing document. A missing file is an empty store.
func (c *Cache) load() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	entries := map[string]json.RawMessage{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("failed to parse cache file: %w", err)
		}
	}
	return entries, nil
}

// flush writes the document atomically via a temp file and rename.
func (c *Cache) flush(entries map[string]json.RawMessage) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode cache file: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return os.Rename(tmp, c.path)
}

// Get decodes the value stored under key into dst. It returns false when
// the key is absent or the stored value cannot be decoded; decode failures
// are logged, never surfaced.
func (c *Cache) Get(key string, dst any) bool {
	raw := c.GetRaw(key)
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn().Str("key", key).Err(err).Msg("failed to decode cached value")
		return false
	}
	return true
}

// GetRaw returns the stored JSON for key, or nil when absent. Read
// failures degrade to nil with a log line.
func (c *Cache) GetRaw(key string) json.RawMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		c.log.Warn().Str("key", key).Err(err).Msg("cache read failed")
		return nil
	}
	return entries[key]
}

// Set serializes value and stores it under key. Serialization failures and
// quota overruns are surfaced, never swallowed.
func (c *Cache) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &SerializationError{Key: key, Err: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		return err
	}
	entries[key] = raw

	if size(entries) > c.quota {
		return fmt.Errorf("set %q: %w", key, ErrQuotaExceeded)
	}
	return c.flush(entries)
}

// Remove deletes the key; missing keys are a no-op success.
func (c *Cache) Remove(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return c.flush(entries)
}

// Clear removes every entry.
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.flush(map[string]json.RawMessage{})
}

// Keys returns every stored key in sorted order.
func (c *Cache) Keys() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Has reports whether key exists; any lookup failure reads as false.
func (c *Cache) Has(key string) bool {
	return c.GetRaw(key) != nil
}

// Size returns a best-effort byte estimate: two bytes per rune of every
// key and value, approximating the UTF-16 accounting browsers apply to
// localStorage. Failures degrade to zero.
func (c *Cache) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		c.log.Warn().Err(err).Msg("cache size estimate failed")
		return 0
	}
	return size(entries)
}

func size(entries map[string]json.RawMessage) int64 {
	var total int64
	for k, v := range entries {
		total += 2 * int64(utf8.RuneCountInString(k)+utf8.RuneCount(v))
	}
	return total
}

// RemainingSpace returns the quota headroom, never negative.
func (c *Cache) RemainingSpace() int64 {
	remaining := c.quota - c.Size()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsAvailable probes the store with a write-then-delete of a sentinel key.
// A denied backing directory reads as false, never as an error.
func (c *Cache) IsAvailable() bool {
	if err := c.Set(probeKey, "probe"); err != nil {
		c.log.Warn().Err(err).Msg("cache unavailable")
		return false
	}
	if err := c.Remove(probeKey); err != nil {
		c.log.Warn().Err(err).Msg("cache unavailable")
		return false
	}
	return true
}

// GetMultiple returns the raw values for the given keys; absent keys map
// to nil entries.
func (c *Cache) GetMultiple(keys []string) map[string]json.RawMessage {
	result := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		result[key] = c.GetRaw(key)
	}
	return result
}

// SetMultiple stores every pair. The helper is fail-fast: the first
// failing key aborts and its error is returned; keys written before it
// stay written, since each keyed operation is independent.
func (c *Cache) SetMultiple(items map[string]any) error {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := c.Set(key, items[key]); err != nil {
			return err
		}
	}
	return nil
}

// RemoveMultiple removes every key, fail-fast like SetMultiple.
func (c *Cache) RemoveMultiple(keys []string) error {
	for _, key := range keys {
		if err := c.Remove(key); err != nil {
			return err
		}
	}
	return nil
}

// GetByPrefix returns all entries whose key starts with prefix. There is
// no index; this is a linear scan.
func (c *Cache) GetByPrefix(prefix string) (map[string]json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		return nil, err
	}
	result := map[string]json.RawMessage{}
	for k, v := range entries {
		if strings.HasPrefix(k, prefix) {
			result[k] = v
		}
	}
	return result, nil
}

// RemoveByPrefix deletes all entries whose key starts with prefix.
func (c *Cache) RemoveByPrefix(prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		return err
	}
	changed := false
	for k := range entries {
		if strings.HasPrefix(k, prefix) {
			delete(entries, k)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return c.flush(entries)
}

// Export returns a full dump of the store.
func (c *Cache) Export() (map[string]json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.load()
}

// Import restores entries from a dump. Existing keys are only overwritten
// when overwrite is true; otherwise the merge is non-destructive.
func (c *Cache) Import(data map[string]json.RawMessage, overwrite bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		return err
	}
	for k, v := range data {
		if _, exists := entries[k]; exists && !overwrite {
			continue
		}
		entries[k] = v
	}
	if size(entries) > c.quota {
		return fmt.Errorf("import: %w", ErrQuotaExceeded)
	}
	return c.flush(entries)
}

// Path returns the backing file path.
func (c *Cache) Path() string {
	return c.path
}

// dir returns the directory the backing file lives in.
func (c *Cache) dir() string {
	return filepath.Dir(c.path)
}
