// Package srs schedules vocabulary reviews with the SuperMemo-2
// algorithm.
package srs

import (
	"sort"
	"time"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

// Quality grades one review on the 0-5 SM-2 scale.
type Quality int

const (
	// QualityBlackout means no recall at all.
	QualityBlackout Quality = 0
	// QualityIncorrect means wrong, but the answer rang a bell.
	QualityIncorrect Quality = 1
	// QualityIncorrectFamiliar means wrong, but felt close.
	QualityIncorrectFamiliar Quality = 2
	// QualityCorrectDifficult means correct with serious effort.
	QualityCorrectDifficult Quality = 3
	// QualityCorrectHesitation means correct after some hesitation.
	QualityCorrectHesitation Quality = 4
	// QualityPerfect means instant correct recall.
	QualityPerfect Quality = 5
)

const minEaseFactor = 1.3

// DefaultEaseFactor is the starting EF for a never-reviewed word.
const DefaultEaseFactor = 2.5

// Scheduler holds the tunables of the SM-2 variant used by the app.
type Scheduler struct {
	// PassThreshold is the lowest quality counted as a correct answer.
	PassThreshold Quality
	// MaxIntervalDays caps how far out a review can be pushed.
	MaxIntervalDays int
	// InitialIntervals are the fixed intervals, in days, applied to the
	// first few successful repetitions before the EF formula takes over.
	InitialIntervals []int
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		PassThreshold:    QualityCorrectDifficult,
		MaxIntervalDays:  365,
		InitialIntervals: []int{1, 3, 7, 14, 30},
	}
}

// Review applies one graded answer to the progress record in place:
// ease factor, interval, repetition count, answer counters, status and
// the next review time all move together.
func (s *Scheduler) Review(progress *entities.Progress, quality Quality, now time.Time) {
	if progress.EaseFactor == 0 {
		progress.EaseFactor = DefaultEaseFactor
	}

	q := float64(quality)
	ef := progress.EaseFactor + (0.1 - (5.0-q)*(0.08+(5.0-q)*0.02))
	if ef < minEaseFactor {
		ef = minEaseFactor
	}
	progress.EaseFactor = ef

	if quality >= s.PassThreshold {
		progress.CorrectCount++
		if progress.Repetitions < len(s.InitialIntervals) {
			progress.IntervalDays = s.InitialIntervals[progress.Repetitions]
		} else {
			progress.IntervalDays = int(float64(progress.IntervalDays) * ef)
		}
		if progress.IntervalDays > s.MaxIntervalDays {
			progress.IntervalDays = s.MaxIntervalDays
		}
		progress.Repetitions++
	} else {
		progress.IncorrectCount++
		progress.Repetitions = 0
		progress.IntervalDays = 1
	}

	progress.Status = s.status(progress, quality)
	progress.LastReviewedAt = now
	progress.NextReviewAt = now.AddDate(0, 0, progress.IntervalDays)
	progress.UpdatedAt = now
}

// status derives the learning stage from the record after a review.
func (s *Scheduler) status(progress *entities.Progress, quality Quality) entities.LearningStatus {
	switch {
	case s.IsMastered(progress, quality):
		return entities.StatusMastered
	case progress.Repetitions >= 2:
		return entities.StatusReviewing
	default:
		return entities.StatusLearning
	}
}

// IsMastered reports whether the word has graduated: at least five
// successful repetitions, a confident last answer and a month-plus
// interval.
func (s *Scheduler) IsMastered(progress *entities.Progress, lastQuality Quality) bool {
	return progress.Repetitions >= 5 &&
		lastQuality >= QualityCorrectHesitation &&
		progress.IntervalDays >= 30
}

// DueForReview filters and orders the records worth showing now:
// never-reviewed words first, then the hardest (lowest EF), then the
// most overdue. At most limit records are returned; limit <= 0 means
// no cap.
func (s *Scheduler) DueForReview(progress []entities.Progress, now time.Time, limit int) []entities.Progress {
	var due []entities.Progress
	for _, p := range progress {
		if !p.NextReviewAt.After(now) {
			due = append(due, p)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if (due[i].Repetitions == 0) != (due[j].Repetitions == 0) {
			return due[i].Repetitions == 0
		}
		if due[i].EaseFactor != due[j].EaseFactor {
			return due[i].EaseFactor < due[j].EaseFactor
		}
		return due[i].NextReviewAt.Before(due[j].NextReviewAt)
	})

	if limit > 0 && len(due) > limit {
		return due[:limit]
	}
	return due
}

// QualityFromAnswer maps a boolean flashcard answer and its response
// time to the 0-5 scale. Fast correct answers grade higher.
func QualityFromAnswer(correct bool, responseTime time.Duration) Quality {
	if !correct {
		return QualityIncorrect
	}
	switch {
	case responseTime <= 3*time.Second:
		return QualityPerfect
	case responseTime <= 10*time.Second:
		return QualityCorrectHesitation
	default:
		return QualityCorrectDifficult
	}
}
