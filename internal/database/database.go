// Package database implements the structured store: a versioned, indexed
// SQLite database holding the five entity tables (vocabularies, user
// progress, collections, learning stats, user settings).
//
// # Usage
//
//	db, err := database.New(database.Config{Path: "finance-english.db"}, log)
//	vocab, err := db.GetVocabulary(ctx, "1")
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultOpTimeout bounds any single database operation so a stalled
// write cannot hang the caller forever.
const DefaultOpTimeout = 5 * time.Second

type Config struct {
	Path      string
	OpTimeout time.Duration
}

// Database is the structured store. It owns the canonical copy of every
// entity; all methods are safe for concurrent use within one process,
// relying on SQLite's transaction isolation.
type Database struct {
	db        *gorm.DB
	opTimeout time.Duration
	version   int
	log       zerolog.Logger
}

// New opens (creating if absent) the database at cfg.Path and applies all
// registered migration steps up to the current schema version.
func New(cfg Config, log zerolog.Logger) (*Database, error) {
	if cfg.OpTimeout <= 0 {
		cfg.OpTimeout = DefaultOpTimeout
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// SQLite supports a single writer; serialize through one connection.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	d := &Database{
		db:        db,
		opTimeout: cfg.OpTimeout,
		log:       log,
	}

	if err := d.migrate(SchemaVersion); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info().Str("path", cfg.Path).Int("version", d.version).Msg("structured store initialized")
	return d, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Version returns the schema version the store currently runs at.
func (d *Database) Version() int {
	return d.version
}

// Upgrade applies migration steps above the current version up to
// newVersion. Re-running a step that already applied is a no-op because
// every step is written to be idempotent.
func (d *Database) Upgrade(ctx context.Context, newVersion int) error {
	if newVersion <= d.version {
		return nil
	}
	return d.migrate(newVersion)
}

// withTimeout returns a gorm handle bound to a deadline-carrying context.
func (d *Database) withTimeout(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	tctx, cancel := context.WithTimeout(ctx, d.opTimeout)
	return d.db.WithContext(tctx), cancel
}

// opErr normalizes a gorm error into the store's taxonomy.
func opErr(op, table string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s on %s: %w", op, table, ErrDuplicateKey)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s on %s: %w", op, table, ErrTimeout)
	}
	return &OperationError{Op: op, Table: table, Err: err}
}
