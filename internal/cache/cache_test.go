package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) *Cache {
	t.Helper()
	return New(Config{Path: filepath.Join(t.TempDir(), "cache.json")}, zerolog.Nop())
}

func TestSetGetRoundTrip(t *testing.T) {
	c := setupTestCache(t)

	type sample struct {
		Theme string `json:"theme"`
		Goal  int    `json:"goal"`
	}
	require.NoError(t, c.Set("prefs", sample{Theme: "dark", Goal: 20}))

	var got sample
	require.True(t, c.Get("prefs", &got))
	assert.Equal(t, sample{Theme: "dark", Goal: 20}, got)
}

func TestGet_AbsentKey(t *testing.T) {
	c := setupTestCache(t)

	var got string
	assert.False(t, c.Get("missing", &got))
	assert.Nil(t, c.GetRaw("missing"))
}

func TestGet_UndecodableValueIsAbsorbed(t *testing.T) {
	c := setupTestCache(t)

	require.NoError(t, c.Set("k", "a string"))

	var got int
	assert.False(t, c.Get("k", &got))
}

func TestSet_QuotaExceeded(t *testing.T) {
	c := New(Config{Path: filepath.Join(t.TempDir(), "cache.json"), Quota: 64}, zerolog.Nop())

	err := c.Set("big", string(make([]byte, 256)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	// Nothing may be stored after a rejected write.
	assert.False(t, c.Has("big"))
}

func TestSet_UnserializableValue(t *testing.T) {
	c := setupTestCache(t)

	err := c.Set("bad", func() {})
	require.Error(t, err)

	var serErr *SerializationError
	assert.ErrorAs(t, err, &serErr)
}

func TestRemoveAndHas(t *testing.T) {
	c := setupTestCache(t)

	require.NoError(t, c.Set("k", 1))
	assert.True(t, c.Has("k"))

	require.NoError(t, c.Remove("k"))
	assert.False(t, c.Has("k"))

	// Removing a missing key is a no-op success.
	assert.NoError(t, c.Remove("k"))
}

func TestKeysAndClear(t *testing.T) {
	c := setupTestCache(t)

	require.NoError(t, c.Set("b", 2))
	require.NoError(t, c.Set("a", 1))

	keys, err := c.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, c.Clear())
	keys, err = c.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSizeAndRemainingSpace(t *testing.T) {
	c := New(Config{Path: filepath.Join(t.TempDir(), "cache.json"), Quota: 1000}, zerolog.Nop())

	assert.Zero(t, c.Size())
	assert.EqualValues(t, 1000, c.RemainingSpace())

	require.NoError(t, c.Set("key", "value"))
	// "key" (3 runes) + "\"value\"" (7 runes) at two bytes per rune.
	assert.EqualValues(t, 20, c.Size())
	assert.EqualValues(t, 980, c.RemainingSpace())
}

func TestIsAvailable(t *testing.T) {
	c := setupTestCache(t)
	assert.True(t, c.IsAvailable())

	// The probe must not leave its sentinel behind.
	keys, err := c.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestIsAvailable_DeniedDirectory(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { os.Chmod(dir, 0o700) })

	c := New(Config{Path: filepath.Join(dir, "cache.json")}, zerolog.Nop())
	assert.False(t, c.IsAvailable())
}

func TestBatchHelpers(t *testing.T) {
	c := setupTestCache(t)

	require.NoError(t, c.SetMultiple(map[string]any{"a": 1, "b": 2}))

	values := c.GetMultiple([]string{"a", "b", "missing"})
	assert.JSONEq(t, "1", string(values["a"]))
	assert.JSONEq(t, "2", string(values["b"]))
	assert.Nil(t, values["missing"])

	require.NoError(t, c.RemoveMultiple([]string{"a", "b"}))
	assert.False(t, c.Has("a"))
	assert.False(t, c.Has("b"))
}

func TestPrefixHelpers(t *testing.T) {
	c := setupTestCache(t)

	require.NoError(t, c.Set("session:1", "x"))
	require.NoError(t, c.Set("session:2", "y"))
	require.NoError(t, c.Set("theme", "dark"))

	matched, err := c.GetByPrefix("session:")
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	require.NoError(t, c.RemoveByPrefix("session:"))
	assert.False(t, c.Has("session:1"))
	assert.True(t, c.Has("theme"))
}

func TestExportImport(t *testing.T) {
	c := setupTestCache(t)

	require.NoError(t, c.Set("keep", "original"))
	require.NoError(t, c.Set("other", 1))

	dump, err := c.Export()
	require.NoError(t, err)
	assert.Len(t, dump, 2)

	// Non-destructive merge skips existing keys.
	require.NoError(t, c.Import(map[string]json.RawMessage{
		"keep": json.RawMessage(`"imported"`),
		"new":  json.RawMessage(`"fresh"`),
	}, false))

	var got string
	require.True(t, c.Get("keep", &got))
	assert.Equal(t, "original", got)
	require.True(t, c.Get("new", &got))
	assert.Equal(t, "fresh", got)

	// Overwrite replaces existing keys.
	require.NoError(t, c.Import(map[string]json.RawMessage{
		"keep": json.RawMessage(`"imported"`),
	}, true))
	require.True(t, c.Get("keep", &got))
	assert.Equal(t, "imported", got)
}

func TestOnChange_ExternalWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.json")
	c := New(Config{Path: path}, zerolog.Nop())

	changed := make(chan struct{}, 8)
	unsubscribe, err := c.OnChange(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer unsubscribe()

	// Simulate another process writing the same store.
	other := New(Config{Path: path}, zerolog.Nop())
	require.NoError(t, other.Set("k", "v"))

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected change notification")
	}
}

func TestOnChange_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	c := New(Config{Path: filepath.Join(dir, "cache.json")}, zerolog.Nop())

	changed := make(chan struct{}, 8)
	unsubscribe, err := c.OnChange(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer unsubscribe()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0o644))

	select {
	case <-changed:
		t.Fatal("unexpected notification for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}
