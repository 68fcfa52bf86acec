// Package runmetrics exports per-run counters in the Prometheus text format
// so a node_exporter textfile collector can pick them up.
package runmetrics

import (
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/ports"
)

const namespace = "kolovorot"

// FileName is the textfile written into the output directory.
const FileName = "metrics.prom"

// Recorder owns a private registry; nothing is registered globally.
type Recorder struct {
	path string
	reg  *prometheus.Registry
	now  func() time.Time

	mentions    prometheus.Counter
	records     *prometheus.CounterVec
	skips       *prometheus.CounterVec
	rows        *prometheus.CounterVec
	lastSuccess *prometheus.GaugeVec
}

type Option func(*Recorder)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// New writes to <outDir>/metrics.prom on Flush.
func New(outDir string, opts ...Option) *Recorder {
	r := &Recorder{
		path: filepath.Join(outDir, FileName),
		reg:  prometheus.NewRegistry(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.mentions = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mentions_total",
		Help:      "Date mentions found in the corpus",
	})
	r.records = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_total",
		Help:      "Extracted event records by classification",
	}, []string{"class"})
	r.skips = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "skips_total",
		Help:      "Items that contributed nothing, by reason",
	}, []string{"reason"})
	r.rows = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "calendar_rows_total",
		Help:      "Calendar rows by the source that filled them",
	}, []string{"source"})
	r.lastSuccess = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix timestamp of the last completed stage",
	}, []string{"stage"})

	r.reg.MustRegister(r.mentions, r.records, r.skips, r.rows, r.lastSuccess)
	return r
}

var _ ports.RunRecorder = (*Recorder)(nil)

func (r *Recorder) RecordExtract(rep domain.ExtractReport) {
	r.mentions.Add(float64(rep.Mentions))
	r.records.WithLabelValues("pagan").Add(float64(rep.Pagan))
	r.records.WithLabelValues("other").Add(float64(rep.Records - rep.Pagan))
	r.addSkips(rep.Skips)
	r.lastSuccess.WithLabelValues("extract").Set(float64(r.now().Unix()))
}

func (r *Recorder) RecordBuild(rep domain.BuildReport) {
	r.rows.WithLabelValues("curated").Add(float64(rep.Curated))
	r.rows.WithLabelValues("extracted").Add(float64(rep.Extracted))
	r.rows.WithLabelValues("placeholder").Add(float64(rep.Placeholder))
	r.addSkips(rep.Skips)
	r.lastSuccess.WithLabelValues("build").Set(float64(r.now().Unix()))
}

func (r *Recorder) addSkips(skips domain.SkipCounts) {
	for reason, n := range skips {
		r.skips.WithLabelValues(string(reason)).Add(float64(n))
	}
}

// Flush writes the registry atomically.
func (r *Recorder) Flush() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return &domain.OpError{Op: "runmetrics.mkdir", Kind: domain.KindExecution, Path: r.path, Err: err}
	}
	if err := prometheus.WriteToTextfile(r.path, r.reg); err != nil {
		return &domain.OpError{Op: "runmetrics.flush", Kind: domain.KindExecution, Path: r.path, Err: err}
	}
	return nil
}

// Path returns the textfile location.
func (r *Recorder) Path() string { return r.path }

// Discard is a RunRecorder that records nothing.
type Discard struct{}

var _ ports.RunRecorder = Discard{}

func (Discard) RecordExtract(domain.ExtractReport) {}
func (Discard) RecordBuild(domain.BuildReport)     {}
func (Discard) Flush() error                       { return nil }
