package bucketstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/ports"
)

const (
	defaultOutDir = "out"
	bucketFile    = "extracted_events.json"
	indexFile     = "runs.jsonl"
)

// JSONStore keeps the aggregated bucket as one JSON document keyed by date.
type JSONStore struct {
	rootDir    string
	outDirName string
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: out/runs.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	outDir := cfg.Paths.OutDir
	if strings.TrimSpace(outDir) == "" {
		outDir = defaultOutDir
	}

	s := &JSONStore{
		rootDir:    root,
		outDirName: outDir,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.BucketStore = (*JSONStore)(nil)

type recordJSON struct {
	EventName           string `json:"event_name"`
	Context             string `json:"context"`
	SourceFile          string `json:"source_file"`
	IsPagan             bool   `json:"is_pagan"`
	IsChristianExcluded bool   `json:"is_christian_excluded"`
	Offset              int    `json:"offset"`
}

// Path returns the bucket file location.
func (s *JSONStore) Path() string {
	return filepath.Join(s.dir(), bucketFile)
}

func (s *JSONStore) dir() string {
	if filepath.IsAbs(s.outDirName) {
		return s.outDirName
	}
	return filepath.Join(s.rootDir, s.outDirName)
}

// SaveBucket writes the bucket with sorted date keys. Per-date order is kept.
func (s *JSONStore) SaveBucket(bucket domain.DateEventBucket, report domain.ExtractReport) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "bucketstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	doc := make(map[string][]recordJSON, len(bucket))
	for date, recs := range bucket {
		out := make([]recordJSON, 0, len(recs))
		for _, r := range recs {
			out = append(out, recordJSON{
				EventName:           r.EventName,
				Context:             r.Context,
				SourceFile:          r.Source,
				IsPagan:             r.IsPagan,
				IsChristianExcluded: r.IsChristianExcluded,
				Offset:              r.Offset,
			})
		}
		doc[date.String()] = out
	}

	path := s.Path()
	// encoding/json emits map keys sorted.
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "bucketstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "bucketstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "bucketstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, report)
	}

	return path, nil
}

// LoadBucket reads the bucket back. A missing file is KindNotFound.
func (s *JSONStore) LoadBucket() (domain.DateEventBucket, error) {
	path := s.Path()
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, os.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "bucketstore.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return Decode(b, path)
}

// Decode parses a bucket document. Every record takes its date from its key.
// Keys are checked for shape only, so any bucket SaveBucket wrote loads back.
func Decode(b []byte, path string) (domain.DateEventBucket, error) {
	var doc map[string][]recordJSON
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, &domain.OpError{
			Op:   "bucketstore.decode",
			Kind: domain.KindInvalidInput,
			Path: path,
			Err:  err,
		}
	}

	bucket := make(domain.DateEventBucket, len(doc))
	for key, recs := range doc {
		date := domain.NormalizedDate(key)
		if !date.WellFormed() {
			return nil, &domain.OpError{
				Op:   "bucketstore.decode",
				Kind: domain.KindInvalidInput,
				Path: path,
				Err:  domain.ErrInvalidDate,
			}
		}
		out := make([]domain.EventRecord, 0, len(recs))
		for _, r := range recs {
			out = append(out, domain.EventRecord{
				Date:                date,
				EventName:           r.EventName,
				Context:             r.Context,
				Source:              r.SourceFile,
				Offset:              r.Offset,
				IsPagan:             r.IsPagan,
				IsChristianExcluded: r.IsChristianExcluded,
			})
		}
		bucket[date] = out
	}
	return bucket, nil
}

func (s *JSONStore) appendIndex(dir string, report domain.ExtractReport) error {
	type idx struct {
		RunID     string         `json:"run_id"`
		File      string         `json:"file"`
		StartedAt time.Time      `json:"started_at"`
		Documents int            `json:"documents"`
		Records   int            `json:"records"`
		Dates     int            `json:"dates"`
		Pagan     int            `json:"pagan"`
		Skips     map[string]int `json:"skips,omitempty"`
	}

	started := report.StartedAt
	if started.IsZero() {
		started = s.now()
	}
	skips := map[string]int{}
	for k, v := range report.Skips {
		skips[string(k)] = v
	}

	line, err := json.Marshal(idx{
		RunID:     report.RunID,
		File:      bucketFile,
		StartedAt: started.UTC(),
		Documents: report.Documents,
		Records:   report.Records,
		Dates:     report.Dates,
		Pagan:     report.Pagan,
		Skips:     skips,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, indexFile)
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}
