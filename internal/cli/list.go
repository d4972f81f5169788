package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bostontheory/events/internal/filter"
)

var (
	flagListRange    string
	flagListSeries   []string
	flagListSpeakers []string
	flagListUpcoming bool
	flagListSort     string
)

// newListCmd creates the list subcommand
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog events, optionally filtered",
		RunE:  runList,
	}

	cmd.Flags().StringVar(&flagListRange, "range", "", `Date range: "Mar 1-15", "March 1 - April 15", or "March"`)
	cmd.Flags().StringSliceVar(&flagListSeries, "series", nil, "Only series whose name contains this text (repeatable)")
	cmd.Flags().StringSliceVar(&flagListSpeakers, "speaker", nil, "Only events whose speaker contains this text (repeatable)")
	cmd.Flags().BoolVar(&flagListUpcoming, "upcoming", false, "Only events from today onward")
	cmd.Flags().StringVar(&flagListSort, "sort", "date", "Sort order: date, series, or title")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	order := SortOrder(strings.ToLower(flagListSort))
	if order != SortByDate && order != SortBySeries && order != SortByTitle {
		return fmt.Errorf("invalid sort order: %s (must be 'date', 'series', or 'title')", flagListSort)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStorage(cfg)
	if err != nil {
		return err
	}

	catalog, err := store.LoadCatalog()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	fl := &filter.Filter{
		Series:       flagListSeries,
		Speakers:     flagListSpeakers,
		UpcomingOnly: flagListUpcoming,
	}
	if flagListRange != "" {
		from, to, err := filter.ParseDateRange(flagListRange)
		if err != nil {
			return fmt.Errorf("parsing --range: %w", err)
		}
		fl.DateFrom = from
		fl.DateTo = to
	}

	events := fl.Apply(catalog)
	sortEvents(events, order)

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "%s\n", fl.String())
	}

	result := &OutputResult{
		GeneratedAt: time.Now().UTC(),
		Events:      events,
		EventCount:  len(events),
		ShowAll:     true,
	}
	return WriteOutput(os.Stdout, result, format, flagVerbose)
}
