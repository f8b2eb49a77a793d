package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/config"
	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

// ImportFileCommand loads custom vocabularies from a JSON file.
type ImportFileCommand struct {
	DatabasePath string
	CachePath    string
	FilePath     string
	Verbose      bool
}

func NewImportFileCommand() *ImportFileCommand {
	return &ImportFileCommand{}
}

func (cmd *ImportFileCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-file", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to a JSON array of vocabularies (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the structured store database file")
	fs.StringVar(&cmd.CachePath, "cache", config.DefaultCachePath, "Path to the key-value cache document")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-file -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import custom vocabularies from a JSON file. Existing entries with\n")
		fmt.Fprintf(os.Stderr, "matching ids are updated; entries without an id get a generated one.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	return nil
}

func (cmd *ImportFileCommand) Run() error {
	raw, err := os.ReadFile(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cmd.FilePath, err)
	}

	var vocabularies []entities.Vocabulary
	if err := json.Unmarshal(raw, &vocabularies); err != nil {
		return fmt.Errorf("failed to parse %s: %w", cmd.FilePath, err)
	}
	if len(vocabularies) == 0 {
		fmt.Println("Nothing to import")
		return nil
	}

	log := newLogger(cmd.Verbose)
	_, importer, closer, err := openServices(cmd.DatabasePath, cmd.CachePath, log)
	if err != nil {
		return err
	}
	defer closer()

	if err := importer.ImportCustomVocabularies(context.Background(), vocabularies); err != nil {
		return err
	}
	fmt.Printf("Imported %d vocabularies\n", len(vocabularies))
	return nil
}
