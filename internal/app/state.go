// Package app holds the application state container: an in-memory state
// snapshot mutated through a closed set of actions, loaded from and
// persisted to the storage façade.
package app

import (
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

// User pairs the tenant id with its settings.
type User struct {
	ID       string                 `json:"id"`
	Settings *entities.UserSettings `json:"settings"`
}

// State is one immutable snapshot of the application. Reducers copy it
// before mutating, so a snapshot handed to a caller never changes under
// them.
type State struct {
	User          *User
	Vocabularies  []entities.Vocabulary
	UserProgress  []entities.Progress
	Collections   []entities.Collection
	LearningStats *entities.LearningStats
	Session       *entities.LearningSession
	AudioState    entities.AudioState
	Loading       bool
	Err           string
}

// NewState returns the pre-load state: empty slices, fresh stats, idle
// audio at normal speed and volume.
func NewState(userID string) State {
	return State{
		LearningStats: entities.NewLearningStats(userID),
		AudioState: entities.AudioState{
			PlaybackSpeed: 1.0,
			Volume:        1.0,
		},
	}
}
