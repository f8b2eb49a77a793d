package config

// Default paths for the persistence layers
const (
	// DefaultDatabasePath is the default path for the structured store
	DefaultDatabasePath = "./finance-english.db"

	// DefaultCachePath is the default path for the key-value cache document
	DefaultCachePath = "./finance-english-cache.json"
)
