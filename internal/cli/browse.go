package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/kolovorot/internal/infra/csvcal"
	"github.com/aalvaropc/kolovorot/internal/infra/logger"
	"github.com/aalvaropc/kolovorot/internal/ui/tui"
)

func browseCmd(root *rootOptions) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "browse",
		Short: "Browse the built calendar in a terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}
			path, err := resolveArg(file, ws.calendarPath())
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Calendar: csvcal.NewCalendarFile(),
				Path:     path,
				Seasons:  ws.lex.Seasons,
				Logger:   logger.L(),
				Debug:    root.debug,
			})
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Calendar CSV (defaults to <out_dir>/calendar.csv)")
	return c
}
