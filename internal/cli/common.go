// Package cli implements the maintenance commands exposed by the binary:
// dataset seeding, re-seeding, validation, statistics and JSON
// import/export.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/cache"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/database"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/services"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/storage"
)

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

// openServices wires the two stores into the façade and import service.
// The returned closer releases the database handle.
func openServices(dbPath, cachePath string, log zerolog.Logger) (*storage.Service, *services.ImportService, func(), error) {
	db, err := database.New(database.Config{Path: dbPath}, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	kv := cache.New(cache.Config{Path: cachePath}, log)
	store := storage.New(db, kv, log)
	importer := services.NewImportService(store, log)

	closer := func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close database")
		}
	}
	return store, importer, closer, nil
}
