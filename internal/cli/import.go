package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kolovorot/internal/infra/csvcal"
	"github.com/aalvaropc/kolovorot/internal/infra/logger"
	"github.com/aalvaropc/kolovorot/internal/infra/sqlitestore"
	"github.com/aalvaropc/kolovorot/internal/usecase"
)

func importCmd(root *rootOptions) *cobra.Command {
	var file string
	var db string

	c := &cobra.Command{
		Use:   "import",
		Short: "Load the built calendar CSV into the SQLite calendar database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}

			csvPath, err := resolveArg(file, ws.calendarPath())
			if err != nil {
				return err
			}
			dbPath, err := resolveArg(db, ws.path(ws.cfg.Paths.DBPath))
			if err != nil {
				return err
			}

			if dbPath != ":memory:" {
				if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
					return err
				}
			}
			store, err := sqlitestore.Open(dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			out, err := usecase.NewImportCalendar(csvcal.NewCalendarFile(), store).Execute(cmd.Context(), csvPath)
			if err != nil {
				return err
			}
			logger.L().Info("import.done", "path", csvPath, "db", dbPath, "imported", out.Imported)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Imported:   %d rows into %s\n", out.Imported, dbPath)
			fmt.Fprintf(w, "Total:      %d\n", out.Stats.Total)
			fmt.Fprintf(w, "Filled:     %d\n", out.Stats.Filled)
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Calendar CSV (defaults to <out_dir>/calendar.csv)")
	c.Flags().StringVar(&db, "db", "", "SQLite database (defaults to paths.db_path)")
	return c
}
