package csvcal

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/ports"
)

// minDescriptionRunes is the description length a title-less curated row
// must exceed when content is required.
const minDescriptionRunes = 50

// CuratedReader loads the manually vetted dataset.
type CuratedReader struct {
	requireContent bool
}

type Option func(*CuratedReader)

// WithRequireContent drops rows that have no title and a short description.
func WithRequireContent(enabled bool) Option {
	return func(r *CuratedReader) { r.requireContent = enabled }
}

func NewCuratedReader(opts ...Option) *CuratedReader {
	r := &CuratedReader{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.CuratedSource = (*CuratedReader)(nil)

// LoadCurated returns entries keyed by normalized date. Rows with an unusable
// date are skipped; a later row for the same date replaces an earlier one.
func (r *CuratedReader) LoadCurated(path string) (map[domain.NormalizedDate]domain.CuratedEntry, []domain.Skip, error) {
	t, err := readTable("csvcal.load_curated", path)
	if err != nil {
		return nil, nil, err
	}

	entries := map[domain.NormalizedDate]domain.CuratedEntry{}
	var skips []domain.Skip

	for i, rec := range t.records {
		line := fmt.Sprintf("%s:%d", path, i+2)
		raw := t.get(rec, ColDate)

		date, ok := curatedDate(raw)
		if !ok {
			skips = append(skips, domain.Skip{
				Reason: domain.SkipMalformedCuratedDate,
				Source: line,
				Detail: raw,
			})
			continue
		}

		e := domain.CuratedEntry{
			Title:       trimField(t.get(rec, ColTitle)),
			Description: trimField(t.get(rec, ColDescription)),
			Traditions:  trimField(t.get(rec, ColTraditions)),
			Preparation: trimField(t.get(rec, ColPreparation)),
		}
		if r.requireContent && e.Title == "" && utf8.RuneCountInString(e.Description) <= minDescriptionRunes {
			skips = append(skips, domain.Skip{
				Reason: domain.SkipEmptyCuratedEntry,
				Source: line,
				Detail: date.String(),
			})
			continue
		}

		entries[date] = e
	}

	return entries, skips, nil
}

// curatedDate accepts "D.M" with optional quotes around either part.
// Spreadsheet separator artifacts such as ";;;;" never parse.
func curatedDate(raw string) (domain.NormalizedDate, bool) {
	s := trimField(raw)
	if s == "" || strings.Contains(s, ";") {
		return "", false
	}
	day, month, ok := strings.Cut(s, ".")
	if !ok {
		return "", false
	}
	d, err := domain.ParseDate(trimField(day) + "." + trimField(month))
	if err != nil {
		return "", false
	}
	return d, true
}
