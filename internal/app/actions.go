package app

import (
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

// Action is one member of the closed set of state transitions. Only
// types in this package implement it.
type Action interface {
	apply(State) State
}

type SetLoading struct{ Loading bool }

func (a SetLoading) apply(s State) State {
	s.Loading = a.Loading
	return s
}

type SetError struct{ Err string }

func (a SetError) apply(s State) State {
	s.Err = a.Err
	return s
}

type SetUser struct{ User *User }

func (a SetUser) apply(s State) State {
	s.User = a.User
	return s
}

type SetVocabularies struct{ Vocabularies []entities.Vocabulary }

func (a SetVocabularies) apply(s State) State {
	s.Vocabularies = a.Vocabularies
	return s
}

type AddVocabulary struct{ Vocabulary entities.Vocabulary }

func (a AddVocabulary) apply(s State) State {
	s.Vocabularies = append(append([]entities.Vocabulary{}, s.Vocabularies...), a.Vocabulary)
	return s
}

type UpdateVocabulary struct{ Vocabulary entities.Vocabulary }

func (a UpdateVocabulary) apply(s State) State {
	out := make([]entities.Vocabulary, len(s.Vocabularies))
	for i, v := range s.Vocabularies {
		if v.ID == a.Vocabulary.ID {
			out[i] = a.Vocabulary
		} else {
			out[i] = v
		}
	}
	s.Vocabularies = out
	return s
}

type DeleteVocabulary struct{ ID string }

func (a DeleteVocabulary) apply(s State) State {
	out := make([]entities.Vocabulary, 0, len(s.Vocabularies))
	for _, v := range s.Vocabularies {
		if v.ID != a.ID {
			out = append(out, v)
		}
	}
	s.Vocabularies = out
	return s
}

type SetUserProgress struct{ Progress []entities.Progress }

func (a SetUserProgress) apply(s State) State {
	s.UserProgress = a.Progress
	return s
}

// UpdateProgress replaces the record with the matching id, or appends it
// when the pair has not been seen before.
type UpdateProgress struct{ Progress entities.Progress }

func (a UpdateProgress) apply(s State) State {
	out := make([]entities.Progress, len(s.UserProgress))
	found := false
	for i, p := range s.UserProgress {
		if p.ID == a.Progress.ID {
			out[i] = a.Progress
			found = true
		} else {
			out[i] = p
		}
	}
	if !found {
		out = append(out, a.Progress)
	}
	s.UserProgress = out
	return s
}

type SetCollections struct{ Collections []entities.Collection }

func (a SetCollections) apply(s State) State {
	s.Collections = a.Collections
	return s
}

type AddCollection struct{ Collection entities.Collection }

func (a AddCollection) apply(s State) State {
	s.Collections = append(append([]entities.Collection{}, s.Collections...), a.Collection)
	return s
}

type UpdateCollection struct{ Collection entities.Collection }

func (a UpdateCollection) apply(s State) State {
	out := make([]entities.Collection, len(s.Collections))
	for i, c := range s.Collections {
		if c.ID == a.Collection.ID {
			out[i] = a.Collection
		} else {
			out[i] = c
		}
	}
	s.Collections = out
	return s
}

type DeleteCollection struct{ ID string }

func (a DeleteCollection) apply(s State) State {
	out := make([]entities.Collection, 0, len(s.Collections))
	for _, c := range s.Collections {
		if c.ID != a.ID {
			out = append(out, c)
		}
	}
	s.Collections = out
	return s
}

type SetLearningStats struct{ Stats *entities.LearningStats }

func (a SetLearningStats) apply(s State) State {
	s.LearningStats = a.Stats
	return s
}

type StartSession struct{ Session *entities.LearningSession }

func (a StartSession) apply(s State) State {
	s.Session = a.Session
	return s
}

type EndSession struct{}

func (a EndSession) apply(s State) State {
	s.Session = nil
	return s
}

// UpdateSession merges the non-nil fields into the running session. With
// no session running it is a no-op.
type UpdateSession struct {
	CurrentIndex *int
	Results      []entities.LearningResult
}

func (a UpdateSession) apply(s State) State {
	if s.Session == nil {
		return s
	}
	session := *s.Session
	if a.CurrentIndex != nil {
		session.CurrentIndex = *a.CurrentIndex
	}
	if a.Results != nil {
		session.Results = a.Results
	}
	s.Session = &session
	return s
}

// SetAudioState merges playback fields; the zero-value speed and volume
// mean "leave unchanged".
type SetAudioState struct {
	IsPlaying           *bool
	CurrentVocabularyID *string
	PlaybackSpeed       *float64
	Volume              *float64
}

func (a SetAudioState) apply(s State) State {
	audio := s.AudioState
	if a.IsPlaying != nil {
		audio.IsPlaying = *a.IsPlaying
	}
	if a.CurrentVocabularyID != nil {
		audio.CurrentVocabularyID = *a.CurrentVocabularyID
	}
	if a.PlaybackSpeed != nil {
		audio.PlaybackSpeed = *a.PlaybackSpeed
	}
	if a.Volume != nil {
		audio.Volume = *a.Volume
	}
	s.AudioState = audio
	return s
}
