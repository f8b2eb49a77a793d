package tasks

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/cache"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/database"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/storage"
)

func setupScheduler(t *testing.T) (*CacheCleanupScheduler, *storage.Service) {
	t.Helper()

	dir := t.TempDir()
	db, err := database.New(database.Config{Path: filepath.Join(dir, "test.db")}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	kv := cache.New(cache.Config{Path: filepath.Join(dir, "cache.json")}, zerolog.Nop())
	store := storage.New(db, kv, zerolog.Nop())
	return NewCacheCleanupScheduler(store, "", zerolog.Nop()), store
}

func TestRunNow_SweepsExpiredEntries(t *testing.T) {
	scheduler, store := setupScheduler(t)

	require.NoError(t, store.SetCacheData("stale", 1, time.Millisecond))
	require.NoError(t, store.SetCacheData("fresh", 2, time.Hour))

	time.Sleep(10 * time.Millisecond)
	require.Equal(t, 1, scheduler.RunNow())
	require.False(t, store.Cache().Has("stale"))
	require.True(t, store.Cache().Has("fresh"))
}

func TestStartStop(t *testing.T) {
	scheduler, _ := setupScheduler(t)

	require.NoError(t, scheduler.Start())
	// A second start must not double-schedule.
	require.NoError(t, scheduler.Start())
	scheduler.Stop()
	scheduler.Stop()
}

func TestStart_RejectsBadSchedule(t *testing.T) {
	scheduler, _ := setupScheduler(t)
	scheduler.schedule = "not a schedule"

	require.Error(t, scheduler.Start())
}
