package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/infra/sqlitestore"
)

// now is the reference time for --upcoming.
var now = time.Now

func showCmd(root *rootOptions) *cobra.Command {
	var date string
	var month int
	var upcoming int
	var db string
	var format string

	c := &cobra.Command{
		Use:   "show",
		Short: "Query the calendar database by date, month or upcoming days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			if err := exactlyOneQuery(date, month, upcoming); err != nil {
				return err
			}

			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}
			dbPath, err := resolveArg(db, ws.path(ws.cfg.Paths.DBPath))
			if err != nil {
				return err
			}
			if !fileExists(dbPath) {
				return fmt.Errorf("calendar database %q not found (tip: run `kolovorot import`)", dbPath)
			}

			store, err := sqlitestore.Open(dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var rows []domain.CalendarRow
			switch {
			case date != "":
				d, perr := domain.ParseDate(date)
				if perr != nil {
					return perr
				}
				row, qerr := store.ByDate(cmd.Context(), d)
				if qerr != nil {
					return qerr
				}
				rows = []domain.CalendarRow{row}
			case month != 0:
				rows, err = store.ByMonth(cmd.Context(), month)
			default:
				rows, err = store.Upcoming(cmd.Context(), now(), upcoming)
			}
			if err != nil {
				return err
			}
			return printRows(cmd.OutOrStdout(), rows, format)
		},
	}

	c.Flags().StringVar(&date, "date", "", "Single day as DD.MM")
	c.Flags().IntVar(&month, "month", 0, "All days of a month (1-12)")
	c.Flags().IntVar(&upcoming, "upcoming", 0, "The next N days starting today")
	c.Flags().StringVar(&db, "db", "", "SQLite database (defaults to paths.db_path)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}

func exactlyOneQuery(date string, month, upcoming int) error {
	n := 0
	if date != "" {
		n++
	}
	if month != 0 {
		n++
	}
	if upcoming != 0 {
		n++
	}
	if n != 1 {
		return errors.New("exactly one of --date, --month or --upcoming is required")
	}
	if upcoming < 0 {
		return errors.New("--upcoming must be positive")
	}
	return nil
}
