package merge

import (
	"github.com/aalvaropc/kolovorot/internal/domain"
)

// Source names used in ResolvedDay.Source.
const (
	SourceCurated     = "curated"
	SourceExtracted   = "extracted"
	SourcePlaceholder = "placeholder"
)

// Source is one ranked provider of calendar rows.
type Source interface {
	Name() string
	// Lookup reports whether the source has data for date and, if so, the row.
	Lookup(date domain.NormalizedDate) (domain.CalendarRow, bool)
}

// Hinter is implemented by sources that can suggest a curation hint.
type Hinter interface {
	Hint(date domain.NormalizedDate) (domain.Season, bool)
}

// CuratedSource serves manually vetted entries verbatim.
type CuratedSource struct {
	entries map[domain.NormalizedDate]domain.CuratedEntry
}

func Curated(entries map[domain.NormalizedDate]domain.CuratedEntry) *CuratedSource {
	return &CuratedSource{entries: entries}
}

func (s *CuratedSource) Name() string { return SourceCurated }

func (s *CuratedSource) Lookup(date domain.NormalizedDate) (domain.CalendarRow, bool) {
	e, ok := s.entries[date]
	if !ok {
		return domain.CalendarRow{}, false
	}
	return domain.CalendarRow{
		Date:        date,
		Title:       e.Title,
		Description: e.Description,
		Traditions:  e.Traditions,
		Preparation: e.Preparation,
	}, true
}

// ExtractedSource surfaces one record per date from an aggregated bucket,
// preferring the first pagan record.
type ExtractedSource struct {
	bucket domain.DateEventBucket
	limit  int
}

// Extracted builds the source; limit caps descriptions (see Describe).
func Extracted(bucket domain.DateEventBucket, limit int) *ExtractedSource {
	return &ExtractedSource{bucket: bucket, limit: limit}
}

func (s *ExtractedSource) Name() string { return SourceExtracted }

func (s *ExtractedSource) Lookup(date domain.NormalizedDate) (domain.CalendarRow, bool) {
	rec, ok := Select(s.bucket[date])
	if !ok {
		return domain.CalendarRow{}, false
	}
	// The record carries no separate traditions text.
	return domain.CalendarRow{
		Date:        date,
		Title:       Clean(rec.EventName),
		Description: Describe(rec.Context, s.limit),
	}, true
}

// Select returns the first pagan record, else the first record.
func Select(recs []domain.EventRecord) (domain.EventRecord, bool) {
	if len(recs) == 0 {
		return domain.EventRecord{}, false
	}
	for _, r := range recs {
		if r.IsPagan {
			return r, true
		}
	}
	return recs[0], true
}

// PlaceholderSource matches every date with an empty row and offers a
// seasonal hint that is not written into the row.
type PlaceholderSource struct {
	seasons [12]domain.Season
}

func Placeholder(seasons [12]domain.Season) *PlaceholderSource {
	return &PlaceholderSource{seasons: seasons}
}

func (s *PlaceholderSource) Name() string { return SourcePlaceholder }

func (s *PlaceholderSource) Lookup(date domain.NormalizedDate) (domain.CalendarRow, bool) {
	return domain.CalendarRow{Date: date}, true
}

func (s *PlaceholderSource) Hint(date domain.NormalizedDate) (domain.Season, bool) {
	m := date.Month()
	if m < 1 || m > 12 {
		return domain.Season{}, false
	}
	return s.seasons[m-1], true
}

var (
	_ Source = (*CuratedSource)(nil)
	_ Source = (*ExtractedSource)(nil)
	_ Source = (*PlaceholderSource)(nil)
	_ Hinter = (*PlaceholderSource)(nil)
)
