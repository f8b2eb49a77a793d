package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/services"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/srs"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/storage"
)

// DefaultAutosaveDelay is how long settings changes are debounced before
// being written through.
const DefaultAutosaveDelay = time.Second

type Config struct {
	UserID        string
	AutosaveDelay time.Duration
}

// Container owns the application state. All mutation goes through
// Dispatch or the higher-level operations; reads get value snapshots.
type Container struct {
	storage   *storage.Service
	importer  *services.ImportService
	scheduler *srs.Scheduler
	log       zerolog.Logger

	userID        string
	autosaveDelay time.Duration

	mu    sync.RWMutex
	state State

	saveMu          sync.Mutex
	saveTimer       *time.Timer
	pendingSettings *entities.UserSettings
}

func New(store *storage.Service, importer *services.ImportService, cfg Config, log zerolog.Logger) *Container {
	if cfg.UserID == "" {
		cfg.UserID = storage.DefaultUserID
	}
	if cfg.AutosaveDelay <= 0 {
		cfg.AutosaveDelay = DefaultAutosaveDelay
	}
	return &Container{
		storage:       store,
		importer:      importer,
		scheduler:     srs.NewScheduler(),
		log:           log,
		userID:        cfg.UserID,
		autosaveDelay: cfg.AutosaveDelay,
		state:         NewState(cfg.UserID),
	}
}

// State returns the current snapshot.
func (c *Container) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Dispatch applies one action to the state.
func (c *Container) Dispatch(action Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = action.apply(c.state)
}

// Start seeds the dataset if needed and loads every entity into the
// state. Loading is cleared even when a load step fails; the failure is
// kept in the error field instead of aborting startup.
func (c *Container) Start(ctx context.Context) error {
	c.Dispatch(SetLoading{Loading: true})
	defer c.Dispatch(SetLoading{Loading: false})

	if err := c.importer.ImportInitialData(ctx); err != nil {
		c.Dispatch(SetError{Err: err.Error()})
		return fmt.Errorf("failed to seed vocabulary data: %w", err)
	}

	settings := c.storage.GetUserSettings(ctx, c.userID)
	if settings == nil {
		// First run: neither layer has seen this user yet.
		settings = entities.DefaultUserSettings(c.userID)
	}
	c.Dispatch(SetUser{User: &User{ID: c.userID, Settings: settings}})

	vocabularies, err := c.storage.GetVocabularies(ctx)
	if err != nil {
		c.Dispatch(SetError{Err: err.Error()})
		return fmt.Errorf("failed to load vocabularies: %w", err)
	}
	c.Dispatch(SetVocabularies{Vocabularies: vocabularies})

	c.Dispatch(SetUserProgress{Progress: c.storage.GetUserProgress(ctx, c.userID)})
	c.Dispatch(SetCollections{Collections: c.storage.GetCollections(ctx, c.userID)})

	if stats := c.storage.GetLearningStats(ctx, c.userID); stats != nil {
		c.Dispatch(SetLearningStats{Stats: stats})
	}

	c.log.Info().
		Str("userId", c.userID).
		Int("vocabularies", len(vocabularies)).
		Msg("application state loaded")
	return nil
}

// UpdateSettings replaces the user settings in the state and schedules a
// debounced write-through. Rapid successive calls collapse into one
// write.
func (c *Container) UpdateSettings(settings *entities.UserSettings) {
	settings.UserID = c.userID
	settings.UpdatedAt = time.Now()
	c.Dispatch(SetUser{User: &User{ID: c.userID, Settings: settings}})

	c.saveMu.Lock()
	defer c.saveMu.Unlock()
	c.pendingSettings = settings
	if c.saveTimer != nil {
		c.saveTimer.Stop()
	}
	c.saveTimer = time.AfterFunc(c.autosaveDelay, func() {
		if err := c.FlushSettings(context.Background()); err != nil {
			c.log.Error().Err(err).Msg("settings autosave failed")
		}
	})
}

// FlushSettings writes any pending settings change immediately.
func (c *Container) FlushSettings(ctx context.Context) error {
	c.saveMu.Lock()
	pending := c.pendingSettings
	c.pendingSettings = nil
	if c.saveTimer != nil {
		c.saveTimer.Stop()
		c.saveTimer = nil
	}
	c.saveMu.Unlock()

	if pending == nil {
		return nil
	}
	return c.storage.SaveUserSettings(ctx, pending)
}

// StartSession begins a study run over the given words and records a
// last-session marker in the cache.
func (c *Container) StartSession(typ entities.SessionType, vocabularies []entities.Vocabulary) *entities.LearningSession {
	session := &entities.LearningSession{
		ID:           uuid.NewString(),
		Vocabularies: vocabularies,
		StartTime:    time.Now(),
		Results:      []entities.LearningResult{},
		Type:         typ,
	}
	c.Dispatch(StartSession{Session: session})

	marker := map[string]any{
		"sessionId": session.ID,
		"type":      session.Type,
		"startedAt": session.StartTime,
	}
	if err := c.storage.Cache().Set(storage.KeyLastSession, marker); err != nil {
		c.log.Warn().Err(err).Msg("failed to record session marker")
	}
	return session
}

// DueVocabularies picks the words to review now: due progress records
// first, padded with never-studied words up to limit.
func (c *Container) DueVocabularies(limit int) []entities.Vocabulary {
	state := c.State()

	vocabByID := make(map[string]entities.Vocabulary, len(state.Vocabularies))
	for _, v := range state.Vocabularies {
		vocabByID[v.ID] = v
	}

	var out []entities.Vocabulary
	studied := map[string]bool{}
	for _, p := range c.scheduler.DueForReview(state.UserProgress, time.Now(), limit) {
		if v, ok := vocabByID[p.VocabularyID]; ok {
			out = append(out, v)
		}
	}
	for _, p := range state.UserProgress {
		studied[p.VocabularyID] = true
	}
	for _, v := range state.Vocabularies {
		if limit > 0 && len(out) >= limit {
			break
		}
		if !studied[v.ID] {
			out = append(out, v)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RecordAnswer grades one flashcard answer: it updates the progress
// record through the scheduler, persists it, and appends the result to
// the running session.
func (c *Container) RecordAnswer(ctx context.Context, vocabularyID string, correct bool, timeSpent time.Duration) (*entities.Progress, error) {
	now := time.Now()

	progress := c.storage.GetVocabularyProgress(ctx, c.userID, vocabularyID)
	if progress == nil {
		progress = &entities.Progress{
			ID:           uuid.NewString(),
			UserID:       c.userID,
			VocabularyID: vocabularyID,
			Status:       entities.StatusNew,
			EaseFactor:   srs.DefaultEaseFactor,
			CreatedAt:    now,
		}
	}

	quality := srs.QualityFromAnswer(correct, timeSpent)
	c.scheduler.Review(progress, quality, now)

	if err := c.storage.UpdateUserProgress(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to persist progress: %w", err)
	}
	c.Dispatch(UpdateProgress{Progress: *progress})

	c.appendResult(entities.LearningResult{
		VocabularyID: vocabularyID,
		IsCorrect:    correct,
		TimeSpent:    timeSpent,
		Attempts:     1,
		Timestamp:    now,
	})
	return progress, nil
}

func (c *Container) appendResult(result entities.LearningResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Session == nil {
		return
	}
	session := *c.state.Session
	session.Results = append(append([]entities.LearningResult{}, session.Results...), result)
	session.CurrentIndex = len(session.Results)
	c.state.Session = &session
}

// EndSession closes the running session, folds its results into the
// learning statistics and persists them. Without a running session it is
// a no-op.
func (c *Container) EndSession(ctx context.Context) error {
	state := c.State()
	if state.Session == nil {
		return nil
	}
	session := state.Session
	now := time.Now()

	stats := state.LearningStats
	if stats == nil {
		stats = entities.NewLearningStats(c.userID)
	}
	c.foldSession(stats, session, now)

	if err := c.storage.UpdateLearningStats(ctx, c.userID, stats); err != nil {
		return fmt.Errorf("failed to persist learning stats: %w", err)
	}
	c.Dispatch(SetLearningStats{Stats: stats})
	c.Dispatch(EndSession{})
	return nil
}

// foldSession merges one finished session into the stats: the daily row
// for today, the overall counters and the study streak.
func (c *Container) foldSession(stats *entities.LearningStats, session *entities.LearningSession, now time.Time) {
	correct := 0
	newWords := 0
	for _, r := range session.Results {
		if r.IsCorrect {
			correct++
		}
	}
	state := c.State()
	reviewed := len(session.Results)
	for _, r := range session.Results {
		for _, p := range state.UserProgress {
			if p.VocabularyID == r.VocabularyID && p.Repetitions <= 1 && p.Status != entities.StatusNew {
				newWords++
				break
			}
		}
	}

	minutes := int(now.Sub(session.StartTime).Minutes())
	today := now.Format("2006-01-02")

	dayIdx := -1
	for i, d := range stats.Daily {
		if d.Date == today {
			dayIdx = i
			break
		}
	}
	if dayIdx == -1 {
		stats.Daily = append(stats.Daily, entities.DailyStats{Date: today})
		dayIdx = len(stats.Daily) - 1
	}
	day := &stats.Daily[dayIdx]
	day.NewWordsLearned += newWords
	day.WordsReviewed += reviewed
	day.CorrectAnswers += correct
	day.TotalAnswers += reviewed
	day.StudyTimeMinutes += minutes

	overall := &stats.Overall
	overall.TotalWordsLearned += newWords
	overall.TotalWordsReviewed += reviewed
	overall.TotalStudyTimeMinutes += minutes

	lastDay := overall.LastStudyDate.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	switch lastDay {
	case today:
		// same-day session, streak unchanged
	case yesterday:
		overall.CurrentStreak++
	default:
		overall.CurrentStreak = 1
	}
	if overall.CurrentStreak > overall.LongestStreak {
		overall.LongestStreak = overall.CurrentStreak
	}
	overall.LastStudyDate = now

	totalCorrect := 0
	totalAnswers := 0
	for _, d := range stats.Daily {
		totalCorrect += d.CorrectAnswers
		totalAnswers += d.TotalAnswers
	}
	if totalAnswers > 0 {
		overall.AverageAccuracy = float64(totalCorrect) / float64(totalAnswers)
	}

	c.foldLevelProgress(stats, state)
	stats.UpdatedAt = now
}

// foldLevelProgress recomputes the per-difficulty breakdown from the
// current vocabulary and progress snapshots.
func (c *Container) foldLevelProgress(stats *entities.LearningStats, state State) {
	byVocab := make(map[string]entities.Progress, len(state.UserProgress))
	for _, p := range state.UserProgress {
		byVocab[p.VocabularyID] = p
	}

	levels := make(entities.LevelProgressList, 0, len(entities.Difficulties))
	for _, level := range entities.Difficulties {
		lp := entities.LevelProgress{Level: level}
		correct, total := 0, 0
		for _, v := range state.Vocabularies {
			if v.Difficulty != level {
				continue
			}
			lp.TotalWords++
			p, ok := byVocab[v.ID]
			if !ok {
				continue
			}
			if p.Status != entities.StatusNew {
				lp.LearnedWords++
			}
			if p.Status == entities.StatusMastered {
				lp.MasteredWords++
			}
			correct += p.CorrectCount
			total += p.CorrectCount + p.IncorrectCount
		}
		if total > 0 {
			lp.Accuracy = float64(correct) / float64(total)
		}
		levels = append(levels, lp)
	}
	stats.LevelProgress = levels
}

// ToggleFavorite adds or removes the vocabulary from the user's
// favorites collection, creating the collection on first use.
func (c *Container) ToggleFavorite(ctx context.Context, vocabularyID string) error {
	state := c.State()

	var favorites *entities.Collection
	for i := range state.Collections {
		if state.Collections[i].Type == entities.CollectionFavorites {
			fav := state.Collections[i]
			favorites = &fav
			break
		}
	}
	now := time.Now()
	if favorites == nil {
		favorites = &entities.Collection{
			ID:            uuid.NewString(),
			Name:          "Favorites",
			Type:          entities.CollectionFavorites,
			VocabularyIDs: entities.StringList{},
			UserID:        c.userID,
			CreatedAt:     now,
		}
	}

	if favorites.Contains(vocabularyID) {
		ids := make(entities.StringList, 0, len(favorites.VocabularyIDs))
		for _, id := range favorites.VocabularyIDs {
			if id != vocabularyID {
				ids = append(ids, id)
			}
		}
		favorites.VocabularyIDs = ids
	} else {
		favorites.VocabularyIDs = append(favorites.VocabularyIDs, vocabularyID)
	}
	favorites.UpdatedAt = now

	if err := c.storage.UpdateCollection(ctx, favorites); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}

	found := false
	for _, col := range state.Collections {
		if col.ID == favorites.ID {
			found = true
			break
		}
	}
	if found {
		c.Dispatch(UpdateCollection{Collection: *favorites})
	} else {
		c.Dispatch(AddCollection{Collection: *favorites})
	}
	return nil
}

// Close flushes pending writes. The container must not be used after.
func (c *Container) Close(ctx context.Context) error {
	return c.FlushSettings(ctx)
}
