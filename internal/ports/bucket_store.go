package ports

import "github.com/aalvaropc/kolovorot/internal/domain"

// BucketStore persists the aggregated extraction output between runs.
type BucketStore interface {
	SaveBucket(bucket domain.DateEventBucket, report domain.ExtractReport) (path string, err error)
	LoadBucket() (domain.DateEventBucket, error)
}
