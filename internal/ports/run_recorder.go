package ports

import "github.com/aalvaropc/kolovorot/internal/domain"

// RunRecorder collects per-run counters for export.
type RunRecorder interface {
	RecordExtract(report domain.ExtractReport)
	RecordBuild(report domain.BuildReport)
	Flush() error
}
