package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/ports"
	"github.com/aalvaropc/kolovorot/internal/usecase/merge"
)

// BuildOptions locate inputs and outputs for one build.
type BuildOptions struct {
	CuratedPath      string
	OutPath          string
	Days             []domain.NormalizedDate
	DescriptionLimit int
}

// BuildCalendar merges curated and extracted data into one row per day.
type BuildCalendar struct {
	curated  ports.CuratedSource
	buckets  ports.BucketStore
	writer   ports.CalendarWriter
	recorder ports.RunRecorder
	lex      domain.Lexicon
	log      *slog.Logger
}

type BuildOption func(*BuildCalendar)

func WithBuildLogger(l *slog.Logger) BuildOption {
	return func(uc *BuildCalendar) { uc.log = l }
}

func WithBuildRecorder(r ports.RunRecorder) BuildOption {
	return func(uc *BuildCalendar) { uc.recorder = r }
}

func NewBuildCalendar(cs ports.CuratedSource, bs ports.BucketStore, w ports.CalendarWriter, lex domain.Lexicon, opts ...BuildOption) *BuildCalendar {
	uc := &BuildCalendar{
		curated:  cs,
		buckets:  bs,
		writer:   w,
		recorder: discardRecorder{},
		lex:      lex,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// BuildOutput carries the resolved days, including placeholder hints.
type BuildOutput struct {
	Report domain.BuildReport
	Days   []domain.ResolvedDay
}

// Execute treats a missing curated file or bucket as empty input.
func (uc *BuildCalendar) Execute(ctx context.Context, opts BuildOptions) (BuildOutput, error) {
	if err := ctx.Err(); err != nil {
		return BuildOutput{}, err
	}

	report := domain.BuildReport{Path: opts.OutPath, Skips: domain.SkipCounts{}}

	curated, skips, err := uc.curated.LoadCurated(opts.CuratedPath)
	switch {
	case domain.IsKind(err, domain.KindNotFound):
		uc.log.Warn("build.curated_missing", "path", opts.CuratedPath)
		curated = nil
	case err != nil:
		return BuildOutput{}, err
	}
	for _, s := range skips {
		report.Skips.Add(s.Reason)
		uc.log.Debug("build.skip", "reason", s.Reason, "source", s.Source, "detail", s.Detail)
	}

	bucket, err := uc.buckets.LoadBucket()
	switch {
	case domain.IsKind(err, domain.KindNotFound):
		uc.log.Warn("build.bucket_missing")
		bucket = domain.DateEventBucket{}
	case err != nil:
		return BuildOutput{}, err
	}

	limit := opts.DescriptionLimit
	if limit == 0 {
		limit = merge.DefaultDescriptionLimit
	}
	days := merge.Standard(curated, bucket, uc.lex, limit).Resolve(opts.Days)

	for _, d := range days {
		switch d.Source {
		case merge.SourceCurated:
			report.Curated++
		case merge.SourceExtracted:
			report.Extracted++
		default:
			report.Placeholder++
		}
	}
	report.Days = len(days)

	if err := uc.writer.WriteCalendar(opts.OutPath, merge.Rows(days)); err != nil {
		return BuildOutput{}, err
	}

	uc.recorder.RecordBuild(report)
	if err := uc.recorder.Flush(); err != nil {
		uc.log.Warn("build.metrics", "err", err)
	}

	uc.log.Info("build.done",
		"days", report.Days,
		"curated", report.Curated,
		"extracted", report.Extracted,
		"placeholder", report.Placeholder,
		"skips", report.Skips.Total(),
	)
	return BuildOutput{Report: report, Days: days}, nil
}
