package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bostontheory/events/internal/config"
	"github.com/bostontheory/events/internal/logger"
	"github.com/bostontheory/events/internal/storage"
)

const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitNewSeminars = 2
)

var (
	flagDataDir string
	flagCatalog string
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theory-events",
		Short: "Aggregate Boston-area theory seminars into one catalog",
		Long: `A CLI tool that aggregates theory seminar announcements from MIT,
Harvard, BU, and Northeastern listings into one deduplicated catalog.

The sources publish the same talks in different shapes and degrees of
detail. scrape normalizes what each one says, merge reconciles the
records into one entry per talk, and list and export read the catalog
back out as text, JSON, or an iCalendar feed.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	// Persistent flags apply to every subcommand
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory for scraped events and the catalog (overrides THEORY_EVENTS_DATA_DIR)")
	cmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Catalog file path (overrides THEORY_EVENTS_CATALOG)")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newMergeCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}

// outputFormat validates the --format flag
func outputFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

// loadConfig reads the environment configuration and applies flag overrides
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagCatalog != "" {
		cfg.CatalogPath = flagCatalog
	}
	return cfg, nil
}

// openStorage initializes storage from the resolved configuration
func openStorage(cfg config.Config) (*storage.Storage, error) {
	store, err := storage.New(cfg.DataDir, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	return store, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
