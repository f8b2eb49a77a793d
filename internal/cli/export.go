package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/config"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/storage"
)

// ExportCommand writes a full data bundle as JSON to a file or stdout.
type ExportCommand struct {
	DatabasePath string
	CachePath    string
	OutputPath   string
	UserID       string
	Verbose      bool
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the structured store database file")
	fs.StringVar(&cmd.CachePath, "cache", config.DefaultCachePath, "Path to the key-value cache document")
	fs.StringVar(&cmd.OutputPath, "output", "", "Output file (default: stdout)")
	fs.StringVar(&cmd.UserID, "user", storage.DefaultUserID, "User id to export")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export vocabularies, progress, collections, stats and settings as JSON.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	log := newLogger(cmd.Verbose)
	store, _, closer, err := openServices(cmd.DatabasePath, cmd.CachePath, log)
	if err != nil {
		return err
	}
	defer closer()

	bundle, err := store.ExportAllData(context.Background(), cmd.UserID)
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}

	if cmd.OutputPath == "" {
		fmt.Println(string(raw))
		return nil
	}
	if err := os.WriteFile(cmd.OutputPath, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.OutputPath, err)
	}
	fmt.Printf("Exported %d vocabularies to %s\n", len(bundle.Vocabularies), cmd.OutputPath)
	return nil
}
