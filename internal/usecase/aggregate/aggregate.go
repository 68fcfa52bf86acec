// Package aggregate groups extracted records by normalized date.
package aggregate

import (
	"iter"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

// Aggregator appends records to per-date buckets in arrival order.
// It has a single writer; callers joining parallel work must feed it serially.
type Aggregator struct {
	bucket domain.DateEventBucket
}

func New() *Aggregator {
	return &Aggregator{bucket: domain.DateEventBucket{}}
}

// Add appends rec under its own date.
func (a *Aggregator) Add(rec domain.EventRecord) {
	a.bucket[rec.Date] = append(a.bucket[rec.Date], rec)
}

// AddAll appends every record in order.
func (a *Aggregator) AddAll(recs []domain.EventRecord) {
	for _, r := range recs {
		a.Add(r)
	}
}

// Bucket returns the accumulated mapping. The caller must not keep adding
// after handing the bucket to the merge stage.
func (a *Aggregator) Bucket() domain.DateEventBucket {
	return a.bucket
}

// Aggregate drains seq into a fresh bucket.
func Aggregate(seq iter.Seq[domain.EventRecord]) domain.DateEventBucket {
	a := New()
	for rec := range seq {
		a.Add(rec)
	}
	return a.Bucket()
}
