package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/config"
)

// StatsCommand prints category and difficulty counts of the stored
// dataset, plus storage layer diagnostics.
type StatsCommand struct {
	DatabasePath string
	CachePath    string
	Verbose      bool
}

func NewStatsCommand() *StatsCommand {
	return &StatsCommand{}
}

func (cmd *StatsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the structured store database file")
	fs.StringVar(&cmd.CachePath, "cache", config.DefaultCachePath, "Path to the key-value cache document")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s stats [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print dataset statistics and storage diagnostics.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	return fs.Parse(args)
}

func (cmd *StatsCommand) Run() error {
	log := newLogger(cmd.Verbose)
	store, importer, closer, err := openServices(cmd.DatabasePath, cmd.CachePath, log)
	if err != nil {
		return err
	}
	defer closer()

	ctx := context.Background()
	stats, err := importer.GetDataStats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Total vocabularies: %d\n\n", stats.TotalVocabularies)

	fmt.Println("By category:")
	printCounts(stats.CategoryCounts)
	fmt.Println("\nBy difficulty:")
	printCounts(stats.DifficultyCounts)

	info := store.GetStorageInfo(ctx)
	fmt.Println("\nStorage:")
	fmt.Printf("  schema version:  %d\n", info.SchemaVersion)
	fmt.Printf("  cache keys:      %d\n", info.CacheKeys)
	fmt.Printf("  cache used:      %d bytes\n", info.CacheUsedBytes)
	fmt.Printf("  cache free:      %d bytes\n", info.CacheFreeBytes)
	fmt.Printf("  cache available: %v\n", info.CacheAvailable)
	return nil
}

func printCounts(counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-16s %d\n", k, counts[k])
	}
}
