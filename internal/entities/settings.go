package entities

import (
	"time"
)

// UserSettings is the single per-user preferences row, keyed by user id.
// A secondary copy lives in the key-value cache for cold-boot fallback.
type UserSettings struct {
	ID              string    `gorm:"size:64" json:"id"`
	UserID          string    `gorm:"primaryKey;size:64" json:"userId"`
	Language        string    `gorm:"size:16" json:"language"` // zh-CN / en-US
	Theme           string    `gorm:"size:16" json:"theme"`    // light / dark / auto
	AudioEnabled    bool      `json:"audioEnabled"`
	VoiceType       string    `gorm:"size:8" json:"voiceType"` // us / uk
	PlaybackSpeed   float64   `json:"playbackSpeed"`
	DailyGoal       int       `json:"dailyGoal"`
	ReminderEnabled bool      `json:"reminderEnabled"`
	ReminderTime    string    `gorm:"size:8" json:"reminderTime"` // HH:mm
	AutoPlayAudio   bool      `json:"autoPlayAudio"`
	ShowTranslation bool      `json:"showTranslation"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

// DefaultUserSettings returns the settings applied when neither store has a
// row for the user yet.
func DefaultUserSettings(userID string) *UserSettings {
	now := time.Now()
	return &UserSettings{
		ID:              "settings-" + userID,
		UserID:          userID,
		Language:        "zh-CN",
		Theme:           "auto",
		AudioEnabled:    true,
		VoiceType:       "us",
		PlaybackSpeed:   1.0,
		DailyGoal:       10,
		ReminderEnabled: false,
		ReminderTime:    "20:00",
		AutoPlayAudio:   false,
		ShowTranslation: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
