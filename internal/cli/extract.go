package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/infra/htmlcorpus"
	"github.com/aalvaropc/kolovorot/internal/infra/logger"
	"github.com/aalvaropc/kolovorot/internal/usecase"
)

func extractCmd(root *rootOptions) *cobra.Command {
	var corpus string
	var workers int
	var format string

	c := &cobra.Command{
		Use:   "extract",
		Short: "Scan the corpus for dated events and save them to the event bucket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}

			corpusPath, err := resolveArg(corpus, ws.path(ws.cfg.Paths.CorpusDir))
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = ws.cfg.Extract.Workers
			}

			src := htmlcorpus.New(corpusPath, htmlcorpus.WithExtensions(ws.cfg.Extract.Extensions))
			defer func() { _ = src.Close() }()

			uc := usecase.NewExtractCorpus(
				src,
				ws.buckets,
				usecase.NewPipeline(ws.lex, ws.cfg.Extract.WindowBefore, ws.cfg.Extract.WindowAfter),
				usecase.WithWorkers(workers),
				usecase.WithExtractLogger(logger.L()),
				usecase.WithRecorder(ws.recorder),
			)

			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}
			return printExtract(cmd.OutOrStdout(), out, format)
		},
	}

	c.Flags().StringVar(&corpus, "corpus", "", "Corpus directory or .epub file (defaults to paths.corpus_dir)")
	c.Flags().IntVar(&workers, "workers", 0, "Parallel document workers (defaults to extract.workers)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}

type extractJSON struct {
	RunID     string            `json:"run_id"`
	Path      string            `json:"path"`
	Documents int               `json:"documents"`
	Mentions  int               `json:"mentions"`
	Records   int               `json:"records"`
	Dates     int               `json:"dates"`
	Pagan     int               `json:"pagan"`
	Skips     domain.SkipCounts `json:"skips"`
}

func printExtract(w io.Writer, out usecase.ExtractOutput, format string) error {
	r := out.Report
	if format == formatJSON {
		return writeJSON(w, extractJSON{
			RunID:     r.RunID,
			Path:      out.Path,
			Documents: r.Documents,
			Mentions:  r.Mentions,
			Records:   r.Records,
			Dates:     r.Dates,
			Pagan:     r.Pagan,
			Skips:     r.Skips,
		})
	}

	fmt.Fprintf(w, "Run ID:     %s\n", r.RunID)
	fmt.Fprintf(w, "Duration:   %s\n", r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
	fmt.Fprintf(w, "Documents:  %d\n", r.Documents)
	fmt.Fprintf(w, "Mentions:   %d\n", r.Mentions)
	fmt.Fprintf(w, "Records:    %d (%d pagan)\n", r.Records, r.Pagan)
	fmt.Fprintf(w, "Dates:      %d\n", r.Dates)
	printSkips(w, r.Skips)
	fmt.Fprintf(w, "Saved:      %s\n", out.Path)
	return nil
}
