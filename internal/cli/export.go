package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bostontheory/events/internal/calendar"
	"github.com/bostontheory/events/internal/logger"
)

var flagExportOut string

// newExportCmd creates the export subcommand
func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as an iCalendar feed",
		Long: `Renders every dated catalog event as a VEVENT and writes the calendar
to stdout or, with --out, to a file. Events reuse their identity key as
UID so re-importing an updated feed replaces talks instead of
duplicating them.`,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&flagExportOut, "out", "", "Write the calendar to this file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
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

	ics := calendar.Encode(catalog)

	if flagExportOut == "" {
		fmt.Print(ics)
		return nil
	}

	if err := os.WriteFile(flagExportOut, []byte(ics), 0644); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	logger.Info("Calendar written", logger.Fields{"path": flagExportOut, "events": len(catalog)})
	return nil
}
