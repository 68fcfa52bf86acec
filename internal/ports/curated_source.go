package ports

import "github.com/aalvaropc/kolovorot/internal/domain"

// CuratedSource loads manually vetted entries keyed by date.
// Malformed rows are reported as skips, not errors.
type CuratedSource interface {
	LoadCurated(path string) (map[domain.NormalizedDate]domain.CuratedEntry, []domain.Skip, error)
}
