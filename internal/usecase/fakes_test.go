package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

// --- fakes shared by use case tests ---

type fakeCorpus struct {
	order   []string
	docs    map[string]string
	delay   map[string]time.Duration
	broken  map[string]bool
	listErr error
}

func (f *fakeCorpus) List(context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.order, nil
}

func (f *fakeCorpus) Load(ctx context.Context, id string) (domain.Document, error) {
	if d := f.delay[id]; d > 0 {
		time.Sleep(d)
	}
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}
	if f.broken[id] {
		return domain.Document{}, &domain.OpError{Op: "fake.load", Kind: domain.KindInvalidInput, Path: id, Err: errors.New("broken")}
	}
	return domain.Document{ID: id, Text: f.docs[id]}, nil
}

type fakeBucketStore struct {
	mu      sync.Mutex
	saved   domain.DateEventBucket
	report  domain.ExtractReport
	saves   int
	saveErr error

	load    domain.DateEventBucket
	loadErr error
}

func (f *fakeBucketStore) SaveBucket(b domain.DateEventBucket, r domain.ExtractReport) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved, f.report = b, r
	f.saves++
	return "out/extracted_events.json", nil
}

func (f *fakeBucketStore) LoadBucket() (domain.DateEventBucket, error) {
	return f.load, f.loadErr
}

type fakeRecorder struct {
	extracts []domain.ExtractReport
	builds   []domain.BuildReport
	flushes  int
	flushErr error
}

func (f *fakeRecorder) RecordExtract(r domain.ExtractReport) { f.extracts = append(f.extracts, r) }
func (f *fakeRecorder) RecordBuild(r domain.BuildReport)     { f.builds = append(f.builds, r) }
func (f *fakeRecorder) Flush() error {
	f.flushes++
	return f.flushErr
}

type fakeCurated struct {
	entries map[domain.NormalizedDate]domain.CuratedEntry
	skips   []domain.Skip
	err     error
}

func (f fakeCurated) LoadCurated(string) (map[domain.NormalizedDate]domain.CuratedEntry, []domain.Skip, error) {
	return f.entries, f.skips, f.err
}

type fakeWriter struct {
	path string
	rows []domain.CalendarRow
	err  error
}

func (f *fakeWriter) WriteCalendar(path string, rows []domain.CalendarRow) error {
	f.path, f.rows = path, rows
	return f.err
}
