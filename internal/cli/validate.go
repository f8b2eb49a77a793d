package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/config"
)

// ValidateCommand scans the stored dataset for integrity violations.
type ValidateCommand struct {
	DatabasePath string
	CachePath    string
	Verbose      bool
}

func NewValidateCommand() *ValidateCommand {
	return &ValidateCommand{}
}

func (cmd *ValidateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the structured store database file")
	fs.StringVar(&cmd.CachePath, "cache", config.DefaultCachePath, "Path to the key-value cache document")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s validate [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Check every stored vocabulary for missing fields and bad values.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	return fs.Parse(args)
}

func (cmd *ValidateCommand) Run() error {
	log := newLogger(cmd.Verbose)
	_, importer, closer, err := openServices(cmd.DatabasePath, cmd.CachePath, log)
	if err != nil {
		return err
	}
	defer closer()

	result := importer.ValidateData(context.Background())
	if result.IsValid {
		fmt.Println("Dataset is valid")
		return nil
	}

	fmt.Printf("Found %d problems:\n", len(result.Errors))
	for _, e := range result.Errors {
		fmt.Printf("  - %s\n", e)
	}
	return fmt.Errorf("validation failed")
}
