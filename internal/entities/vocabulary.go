package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists all valid difficulty levels in ascending order.
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// StringList is a string slice stored as a JSON array in a text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	}
	return fmt.Errorf("unsupported type %T for StringList", src)
}

type Vocabulary struct {
	ID                 string     `gorm:"primaryKey;size:64" json:"id"`
	Word               string     `gorm:"index;size:128" json:"word"`
	Pronunciation      string     `gorm:"size:128" json:"pronunciation"`
	Definition         string     `gorm:"type:text" json:"definition"`
	Example            string     `gorm:"type:text" json:"example"`
	ExampleTranslation string     `gorm:"type:text" json:"exampleTranslation"`
	Difficulty         Difficulty `gorm:"index;size:20" json:"difficulty"`
	Category           string     `gorm:"index;size:64" json:"category"`
	Tags               StringList `gorm:"index;type:text" json:"tags"`
	AudioURL           string     `gorm:"size:2048" json:"audioUrl,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func (Vocabulary) TableName() string {
	return "vocabularies"
}

// HasTag reports whether the vocabulary carries the given tag.
func (v *Vocabulary) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
