package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kolovorot/internal/infra/csvcal"
	"github.com/aalvaropc/kolovorot/internal/infra/daysequence"
	"github.com/aalvaropc/kolovorot/internal/infra/logger"
	"github.com/aalvaropc/kolovorot/internal/usecase"
)

func buildCmd(root *rootOptions) *cobra.Command {
	var curated string
	var out string
	var format string

	c := &cobra.Command{
		Use:   "build",
		Short: "Merge curated entries and extracted events into one row per day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}

			curatedPath, err := resolveArg(curated, ws.path(ws.cfg.Paths.CuratedCSV))
			if err != nil {
				return err
			}
			outPath, err := resolveArg(out, ws.calendarPath())
			if err != nil {
				return err
			}

			reader := csvcal.NewCuratedReader(csvcal.WithRequireContent(ws.cfg.Calendar.CuratedRequiresContent))
			uc := usecase.NewBuildCalendar(
				reader,
				ws.buckets,
				csvcal.NewCalendarFile(),
				ws.lex,
				usecase.WithBuildLogger(logger.L()),
				usecase.WithBuildRecorder(ws.recorder),
			)

			res, err := uc.Execute(cmd.Context(), usecase.BuildOptions{
				CuratedPath:      curatedPath,
				OutPath:          outPath,
				Days:             daysequence.Days(ws.cfg.Calendar.Leap),
				DescriptionLimit: ws.cfg.Calendar.DescriptionLimit,
			})
			if err != nil {
				return err
			}
			return printBuild(cmd.OutOrStdout(), res, format)
		},
	}

	c.Flags().StringVar(&curated, "curated", "", "Curated CSV (defaults to paths.curated_csv)")
	c.Flags().StringVarP(&out, "out", "o", "", "Output CSV (defaults to <out_dir>/calendar.csv)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}

func printBuild(w io.Writer, res usecase.BuildOutput, format string) error {
	r := res.Report
	if format == formatJSON {
		return writeJSON(w, map[string]any{
			"path":        r.Path,
			"days":        r.Days,
			"curated":     r.Curated,
			"extracted":   r.Extracted,
			"placeholder": r.Placeholder,
			"skips":       r.Skips,
		})
	}

	fmt.Fprintf(w, "Calendar:    %s\n", r.Path)
	fmt.Fprintf(w, "Days:        %d\n", r.Days)
	fmt.Fprintf(w, "Curated:     %d\n", r.Curated)
	fmt.Fprintf(w, "Extracted:   %d\n", r.Extracted)
	fmt.Fprintf(w, "Placeholder: %d\n", r.Placeholder)
	printSkips(w, r.Skips)
	return nil
}
