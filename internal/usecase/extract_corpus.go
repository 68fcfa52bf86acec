package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/ports"
	"github.com/aalvaropc/kolovorot/internal/usecase/aggregate"
)

// ExtractCorpus scans every corpus document and persists the aggregated bucket.
type ExtractCorpus struct {
	corpus   ports.CorpusSource
	store    ports.BucketStore
	recorder ports.RunRecorder
	pipeline *Pipeline

	workers int
	log     *slog.Logger
	newID   func() string
	now     func() time.Time
}

type ExtractOption func(*ExtractCorpus)

// WithWorkers bounds concurrent document processing. Values below 1 mean 1.
func WithWorkers(n int) ExtractOption {
	return func(uc *ExtractCorpus) { uc.workers = n }
}

func WithExtractLogger(l *slog.Logger) ExtractOption {
	return func(uc *ExtractCorpus) { uc.log = l }
}

func WithRecorder(r ports.RunRecorder) ExtractOption {
	return func(uc *ExtractCorpus) { uc.recorder = r }
}

// WithRunID is useful for tests.
func WithRunID(newID func() string) ExtractOption {
	return func(uc *ExtractCorpus) { uc.newID = newID }
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) ExtractOption {
	return func(uc *ExtractCorpus) { uc.now = now }
}

func NewExtractCorpus(corpus ports.CorpusSource, store ports.BucketStore, pipeline *Pipeline, opts ...ExtractOption) *ExtractCorpus {
	uc := &ExtractCorpus{
		corpus:   corpus,
		store:    store,
		pipeline: pipeline,
		recorder: discardRecorder{},
		workers:  1,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		newID:    func() string { return uuid.NewString() },
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.workers < 1 {
		uc.workers = 1
	}
	return uc
}

// ExtractOutput is what one extraction run produced.
type ExtractOutput struct {
	Report domain.ExtractReport
	Bucket domain.DateEventBucket
	Path   string
}

// Execute fails only when the corpus cannot be listed, the context is
// cancelled or the bucket cannot be saved. Unreadable documents are skips.
func (uc *ExtractCorpus) Execute(ctx context.Context) (ExtractOutput, error) {
	report := domain.ExtractReport{
		RunID:     uc.newID(),
		StartedAt: uc.now(),
		Skips:     domain.SkipCounts{},
	}
	log := uc.log.With("run_id", report.RunID)

	ids, err := uc.corpus.List(ctx)
	if err != nil {
		return ExtractOutput{}, err
	}
	log.Info("extract.start", "documents", len(ids), "workers", uc.workers)

	// Each worker fills only its own slot; the join below keeps document order.
	results := make([]DocumentResult, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)
	for i, id := range ids {
		g.Go(func() error {
			doc, err := uc.corpus.Load(gctx, id)
			if err != nil {
				if cerr := gctx.Err(); cerr != nil {
					return cerr
				}
				results[i] = DocumentResult{Skips: []domain.Skip{{
					Reason: domain.SkipUnreadableDocument,
					Source: id,
					Detail: err.Error(),
				}}}
				return nil
			}
			results[i] = uc.pipeline.Document(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ExtractOutput{}, err
	}

	agg := aggregate.New()
	for _, res := range results {
		report.Mentions += res.Mentions
		agg.AddAll(res.Records)
		for _, s := range res.Skips {
			report.Skips.Add(s.Reason)
			log.Debug("extract.skip", "reason", s.Reason, "source", s.Source, "detail", s.Detail)
		}
	}

	bucket := agg.Bucket()
	report.Documents = len(ids)
	report.Records = bucket.Len()
	report.Dates = len(bucket)
	report.Pagan = bucket.PaganCount()
	report.FinishedAt = uc.now()

	path, err := uc.store.SaveBucket(bucket, report)
	if err != nil {
		return ExtractOutput{}, err
	}

	uc.recorder.RecordExtract(report)
	if err := uc.recorder.Flush(); err != nil {
		log.Warn("extract.metrics", "err", err)
	}

	log.Info("extract.done",
		"mentions", report.Mentions,
		"records", report.Records,
		"dates", report.Dates,
		"pagan", report.Pagan,
		"skips", report.Skips.Total(),
	)

	return ExtractOutput{Report: report, Bucket: bucket, Path: path}, nil
}

type discardRecorder struct{}

func (discardRecorder) RecordExtract(domain.ExtractReport) {}
func (discardRecorder) RecordBuild(domain.BuildReport)     {}
func (discardRecorder) Flush() error                       { return nil }
