package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DailyStats aggregates one calendar day of study activity.
type DailyStats struct {
	Date             string `json:"date"` // YYYY-MM-DD
	NewWordsLearned  int    `json:"newWordsLearned"`
	WordsReviewed    int    `json:"wordsReviewed"`
	CorrectAnswers   int    `json:"correctAnswers"`
	TotalAnswers     int    `json:"totalAnswers"`
	StudyTimeMinutes int    `json:"studyTimeMinutes"`
}

type OverallStats struct {
	TotalWordsLearned     int       `json:"totalWordsLearned"`
	TotalWordsReviewed    int       `json:"totalWordsReviewed"`
	TotalStudyTimeMinutes int       `json:"totalStudyTimeMinutes"`
	CurrentStreak         int       `json:"currentStreak"`
	LongestStreak         int       `json:"longestStreak"`
	AverageAccuracy       float64   `json:"averageAccuracy"`
	LastStudyDate         time.Time `json:"lastStudyDate"`
}

type LevelProgress struct {
	Level         Difficulty `json:"level"`
	TotalWords    int        `json:"totalWords"`
	LearnedWords  int        `json:"learnedWords"`
	MasteredWords int        `json:"masteredWords"`
	Accuracy      float64    `json:"accuracy"`
}

// DailyStatsList and LevelProgressList are stored as JSON text columns.
type (
	DailyStatsList    []DailyStats
	LevelProgressList []LevelProgress
)

func (l DailyStatsList) Value() (driver.Value, error)    { return jsonValue(l) }
func (l *DailyStatsList) Scan(src any) error             { return jsonScan(src, l) }
func (l LevelProgressList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *LevelProgressList) Scan(src any) error          { return jsonScan(src, l) }

func (o OverallStats) Value() (driver.Value, error) { return jsonValue(o) }
func (o *OverallStats) Scan(src any) error          { return jsonScan(src, o) }

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		return json.Unmarshal([]byte(v), dst)
	case []byte:
		return json.Unmarshal(v, dst)
	}
	return fmt.Errorf("unsupported type %T for JSON column", src)
}

// LearningStats is the single per-user statistics row, keyed by user id.
type LearningStats struct {
	UserID        string            `gorm:"primaryKey;size:64" json:"userId"`
	Daily         DailyStatsList    `gorm:"type:text" json:"daily"`
	Overall       OverallStats      `gorm:"type:text" json:"overall"`
	LevelProgress LevelProgressList `gorm:"type:text" json:"levelProgress"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func (LearningStats) TableName() string {
	return "learning_stats"
}

// NewLearningStats returns an empty statistics row with one LevelProgress
// slot per difficulty level.
func NewLearningStats(userID string) *LearningStats {
	levels := make(LevelProgressList, 0, len(Difficulties))
	for _, d := range Difficulties {
		levels = append(levels, LevelProgress{Level: d})
	}
	return &LearningStats{
		UserID:        userID,
		Daily:         DailyStatsList{},
		LevelProgress: levels,
		UpdatedAt:     time.Now(),
	}
}
