package entities

import (
	"time"
)

type LearningStatus string

const (
	StatusNew       LearningStatus = "new"
	StatusLearning  LearningStatus = "learning"
	StatusReviewing LearningStatus = "reviewing"
	StatusMastered  LearningStatus = "mastered"
)

// Progress tracks one user's spaced-repetition state for one vocabulary.
// The (UserID, VocabularyID) pair is unique by convention only; callers
// look up the existing record before writing a new one.
type Progress struct {
	ID             string         `gorm:"primaryKey;size:64" json:"id"`
	VocabularyID   string         `gorm:"index;size:64" json:"vocabularyId"`
	UserID         string         `gorm:"index;size:64" json:"userId"`
	Status         LearningStatus `gorm:"index;size:20" json:"status"`
	CorrectCount   int            `json:"correctCount"`
	IncorrectCount int            `json:"incorrectCount"`
	LastReviewedAt time.Time      `json:"lastReviewedAt"`
	NextReviewAt   time.Time      `gorm:"index" json:"nextReviewAt"`
	EaseFactor     float64        `json:"easeFactor"`
	IntervalDays   int            `json:"interval"`
	Repetitions    int            `json:"repetitions"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func (Progress) TableName() string {
	return "user_progress"
}

// Accuracy returns the fraction of correct answers, 0 when unreviewed.
func (p *Progress) Accuracy() float64 {
	total := p.CorrectCount + p.IncorrectCount
	if total == 0 {
		return 0
	}
	return float64(p.CorrectCount) / float64(total)
}
