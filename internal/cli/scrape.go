package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bostontheory/events/internal/assemble"
	"github.com/bostontheory/events/internal/event"
	"github.com/bostontheory/events/internal/fetch"
	"github.com/bostontheory/events/internal/logger"
	"github.com/bostontheory/events/internal/source"
)

var flagScrapeSource string

// newScrapeCmd creates the scrape subcommand
func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Fetch every seminar source and store what it publishes",
		Long: `Fetches all configured seminar listings concurrently, normalizes what
each one publishes, and stores the result per source under the data
directory. A source that fails to fetch is logged and skipped; its
previous snapshot stays in place until a later run replaces it.`,
		RunE: runScrape,
	}

	cmd.Flags().StringVar(&flagScrapeSource, "source", "", "Scrape only the named source")

	return cmd
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStorage(cfg)
	if err != nil {
		return err
	}

	now := time.Now()
	var fetcher fetch.Fetcher = fetch.NewClient(cfg.HTTPTimeout, cfg.UserAgent)
	if cfg.CacheTTL > 0 {
		fetcher = fetch.NewCache(fetcher, store.CachePath(), cfg.CacheTTL)
	}
	sources := source.All(fetcher, cfg, now)
	if flagScrapeSource != "" {
		picked, names := pickSource(sources, flagScrapeSource)
		if picked == nil {
			return fmt.Errorf("unknown source: %s (known: %s)", flagScrapeSource, strings.Join(names, ", "))
		}
		sources = []source.Source{picked}
	}

	start := time.Now()
	results := source.ExtractAll(cmd.Context(), sources)
	logger.RecordTiming("scrape.extract", time.Since(start))

	failed := 0
	total := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			logger.IncrCounter("scrape.sources_failed")
			logger.Error("Source failed", logger.Fields{"source": res.Name}, res.Err)
			continue
		}

		events := event.Recent(assemble.Events(res.Profile, res.Observations), now, cfg.WindowYears)
		if err := store.WriteSource(res.Name, events); err != nil {
			return fmt.Errorf("storing %s events: %w", res.Name, err)
		}

		total += len(events)
		logger.Info("Scraped source", logger.Fields{"source": res.Name, "events": len(events)})
	}

	logger.Info("Scrape complete", logger.Fields{
		"sources": len(results),
		"failed":  failed,
		"events":  total,
	})

	if failed == len(results) {
		return fmt.Errorf("all %d sources failed", failed)
	}
	return nil
}

// pickSource finds a source by name and returns the known names alongside
// for the error message when nothing matches.
func pickSource(sources []source.Source, name string) (source.Source, []string) {
	names := make([]string, 0, len(sources))
	for _, src := range sources {
		names = append(names, src.Name())
		if src.Name() == name {
			return src, names
		}
	}
	return nil, names
}
