package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/config"
)

// ImportCommand seeds the built-in vocabulary dataset into the store.
type ImportCommand struct {
	DatabasePath string
	CachePath    string
	Reimport     bool
	Verbose      bool
}

func NewImportCommand() *ImportCommand {
	return &ImportCommand{}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the structured store database file")
	fs.StringVar(&cmd.CachePath, "cache", config.DefaultCachePath, "Path to the key-value cache document")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Seed the built-in financial vocabulary dataset into the store.\n")
		fmt.Fprintf(os.Stderr, "An already seeded store is left untouched; use 'reimport' to reset.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	return fs.Parse(args)
}

func (cmd *ImportCommand) Run() error {
	log := newLogger(cmd.Verbose)
	_, importer, closer, err := openServices(cmd.DatabasePath, cmd.CachePath, log)
	if err != nil {
		return err
	}
	defer closer()

	ctx := context.Background()
	if cmd.Reimport {
		if err := importer.ReimportData(ctx); err != nil {
			return err
		}
	} else {
		if err := importer.ImportInitialData(ctx); err != nil {
			return err
		}
	}

	stats, err := importer.GetDataStats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Store now holds %d vocabularies\n", stats.TotalVocabularies)
	return nil
}
