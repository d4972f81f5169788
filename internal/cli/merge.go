package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bostontheory/events/internal/event"
	"github.com/bostontheory/events/internal/logger"
	"github.com/bostontheory/events/internal/manual"
)

var flagManual string

// newMergeCmd creates the merge subcommand
func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Reconcile scraped and manual events into the catalog",
		Long: `Merges everything the scrape command stored, the manual events file,
and the existing catalog into one record per talk, keeping the most
complete version of each. Exits with code 2 when the catalog gained
events it had not seen before, which makes the command usable as a
change detector from cron.`,
		RunE: runMerge,
	}

	cmd.Flags().StringVar(&flagManual, "manual", "", "Manual events YAML file (overrides THEORY_EVENTS_MANUAL)")

	return cmd
}

func runMerge(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagManual != "" {
		cfg.ManualPath = flagManual
	}
	store, err := openStorage(cfg)
	if err != nil {
		return err
	}

	scraped, skipped, err := store.LoadScraped()
	if err != nil {
		return fmt.Errorf("loading scraped events: %w", err)
	}
	for _, sk := range skipped {
		logger.Warn("Skipping unreadable scrape file", logger.Fields{"path": sk.Path, "error": sk.Err.Error()})
	}

	// A broken manual file loses its entries for this run, never the merge.
	manualEvents, err := manual.Load(cfg.ManualPath)
	if err != nil {
		logger.Warn("Ignoring manual events", logger.Fields{"path": cfg.ManualPath, "error": err.Error()})
	}

	previous, err := store.LoadCatalog()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	candidates := make([]event.Event, 0, len(previous)+len(scraped)+len(manualEvents))
	candidates = append(candidates, previous...)
	candidates = append(candidates, scraped...)
	candidates = append(candidates, manualEvents...)

	merged, stats := event.Merge(candidates)
	fresh := event.NewSince(previous, merged)

	if err := store.WriteCatalog(merged); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}

	logger.SetGauge("catalog.events", float64(stats.Output))
	logger.Info("Catalog updated", logger.Fields{
		"input":      stats.Input,
		"invalid":    stats.Invalid,
		"duplicates": stats.Duplicates,
		"events":     stats.Output,
		"new":        len(fresh),
	})

	result := &OutputResult{
		GeneratedAt: time.Now().UTC(),
		Events:      fresh,
		EventCount:  len(fresh),
		BySeries:    event.BySeries(fresh),
		Stats:       &stats,
	}
	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	// Exit code distinguishes "ran fine" from "found something new"
	if len(fresh) > 0 {
		os.Exit(ExitNewSeminars)
	}
	os.Exit(ExitSuccess)
	return nil
}
