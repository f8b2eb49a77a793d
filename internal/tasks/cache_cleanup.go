// Package tasks runs the periodic maintenance jobs.
package tasks

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/storage"
)

// DefaultCleanupSchedule sweeps expired cache entries hourly.
const DefaultCleanupSchedule = "0 * * * *"

// CacheCleanupScheduler periodically evicts expired TTL entries from the
// key-value cache.
type CacheCleanupScheduler struct {
	storage  *storage.Service
	schedule string
	log      zerolog.Logger

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.Mutex
	isRunning bool
}

func NewCacheCleanupScheduler(storage *storage.Service, schedule string, log zerolog.Logger) *CacheCleanupScheduler {
	if schedule == "" {
		schedule = DefaultCleanupSchedule
	}
	return &CacheCleanupScheduler{
		storage:  storage,
		schedule: schedule,
		log:      log,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start schedules the sweep. Starting an already running scheduler is a
// no-op.
func (s *CacheCleanupScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.runSweep)
	if err != nil {
		return fmt.Errorf("failed to schedule cache cleanup: %w", err)
	}
	s.entryID = entryID
	s.cron.Start()
	s.isRunning = true

	s.log.Info().Str("schedule", s.schedule).Msg("cache cleanup scheduler started")
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *CacheCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
	s.log.Info().Msg("cache cleanup scheduler stopped")
}

// RunNow triggers one sweep outside the schedule.
func (s *CacheCleanupScheduler) RunNow() int {
	removed := s.storage.ClearExpiredCache()
	if removed > 0 {
		s.log.Info().Int("removed", removed).Msg("evicted expired cache entries")
	}
	return removed
}

func (s *CacheCleanupScheduler) runSweep() {
	s.RunNow()
}
