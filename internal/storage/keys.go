package storage

// Fixed key-value cache keys. Each is an independently readable and
// writable JSON blob under its own key.
const (
	KeyUserSettings        = "user_settings"
	KeyThemePreference     = "theme_preference"
	KeyLanguagePreference  = "language_preference"
	KeyAudioSettings       = "audio_settings"
	KeyLearningPreferences = "learning_preferences"
	KeyLastSession         = "last_session"
	KeyCacheTimestamp      = "cache_timestamp"
	KeyOfflineData         = "offline_data"
	KeySyncStatus          = "sync_status"
)

// DefaultUserID is the single hard-coded tenant. Every entity's userId
// field and index already anticipate more users, but the convenience
// methods below assume this one.
const DefaultUserID = "default-user"
