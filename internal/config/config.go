package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Cache
		App
		CacheCleanup
		Global
	}

	Database struct {
		Path      string
		OpTimeout time.Duration
	}
	Cache struct {
		Path  string
		Quota int64
	}
	App struct {
		UserID        string
		AutosaveDelay time.Duration
	}
	CacheCleanup struct {
		Enabled  bool
		Schedule string // Cron format: "0 * * * *" = hourly
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_op_timeout", "5s")
	v.SetDefault("cache_path", DefaultCachePath)
	v.SetDefault("cache_quota", 5*1024*1024)
	v.SetDefault("user_id", "default-user")
	v.SetDefault("settings_autosave_delay", "1s")
	v.SetDefault("cache_cleanup_enabled", true)
	v.SetDefault("cache_cleanup_schedule", "0 * * * *") // Hourly at :00
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	return &Config{
		Database: Database{
			Path:      v.GetString("DATABASE_PATH"),
			OpTimeout: v.GetDuration("DATABASE_OP_TIMEOUT"),
		},
		Cache: Cache{
			Path:  v.GetString("CACHE_PATH"),
			Quota: v.GetInt64("CACHE_QUOTA"),
		},
		App: App{
			UserID:        v.GetString("USER_ID"),
			AutosaveDelay: v.GetDuration("SETTINGS_AUTOSAVE_DELAY"),
		},
		CacheCleanup: CacheCleanup{
			Enabled:  v.GetBool("CACHE_CLEANUP_ENABLED"),
			Schedule: v.GetString("CACHE_CLEANUP_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
