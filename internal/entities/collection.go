package entities

import (
	"time"
)

type CollectionType string

const (
	CollectionFavorites CollectionType = "favorites"
	CollectionDifficult CollectionType = "difficult"
	CollectionCustom    CollectionType = "custom"
)

// Collection is a named, ordered list of vocabulary ids. Favorites and
// difficult are singleton system collections per user; custom collections
// are unbounded in count.
type Collection struct {
	ID            string         `gorm:"primaryKey;size:64" json:"id"`
	Name          string         `gorm:"size:128" json:"name"`
	Type          CollectionType `gorm:"index;size:20" json:"type"`
	Description   string         `gorm:"type:text" json:"description,omitempty"`
	VocabularyIDs StringList     `gorm:"type:text" json:"vocabularyIds"`
	UserID        string         `gorm:"index;size:64" json:"userId"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (Collection) TableName() string {
	return "collections"
}

// Contains reports whether the collection references the vocabulary id.
func (c *Collection) Contains(vocabularyID string) bool {
	for _, id := range c.VocabularyIDs {
		if id == vocabularyID {
			return true
		}
	}
	return false
}
