package entities

import (
	"time"
)

type SessionType string

const (
	SessionLearn  SessionType = "learn"
	SessionReview SessionType = "review"
	SessionTest   SessionType = "test"
)

// LearningResult records one answer given during a session.
type LearningResult struct {
	VocabularyID string        `json:"vocabularyId"`
	IsCorrect    bool          `json:"isCorrect"`
	TimeSpent    time.Duration `json:"timeSpent"`
	Attempts     int           `json:"attempts"`
	Timestamp    time.Time     `json:"timestamp"`
}

// LearningSession is the in-memory state of one study run. Sessions are
// never persisted as rows; the cache keeps a small last-session marker.
type LearningSession struct {
	ID           string           `json:"id"`
	Vocabularies []Vocabulary     `json:"vocabularies"`
	CurrentIndex int              `json:"currentIndex"`
	StartTime    time.Time        `json:"startTime"`
	EndTime      *time.Time       `json:"endTime,omitempty"`
	Results      []LearningResult `json:"results"`
	Type         SessionType      `json:"type"`
}

// AudioState mirrors the playback widget's state for the running session.
type AudioState struct {
	IsPlaying           bool    `json:"isPlaying"`
	CurrentVocabularyID string  `json:"currentVocabularyId,omitempty"`
	PlaybackSpeed       float64 `json:"playbackSpeed"`
	Volume              float64 `json:"volume"`
}
