// Package merge resolves one calendar row per day from ranked sources.
package merge

import (
	"github.com/aalvaropc/kolovorot/internal/domain"
)

// Resolver consults its sources in order; the first one with data wins.
type Resolver struct {
	sources []Source
}

func New(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// Standard is the curated > extracted > placeholder chain.
func Standard(curated map[domain.NormalizedDate]domain.CuratedEntry, extracted domain.DateEventBucket, lex domain.Lexicon, limit int) *Resolver {
	return New(
		Curated(curated),
		Extracted(extracted, limit),
		Placeholder(lex.Seasons),
	)
}

// Resolve returns exactly one ResolvedDay per input date, in input order.
// A day no source claims gets an empty row and an empty source name.
func (r *Resolver) Resolve(days []domain.NormalizedDate) []domain.ResolvedDay {
	out := make([]domain.ResolvedDay, 0, len(days))
	for _, d := range days {
		out = append(out, r.resolveDay(d))
	}
	return out
}

// Rows strips resolution metadata.
func Rows(days []domain.ResolvedDay) []domain.CalendarRow {
	out := make([]domain.CalendarRow, 0, len(days))
	for _, d := range days {
		out = append(out, d.Row)
	}
	return out
}

func (r *Resolver) resolveDay(date domain.NormalizedDate) domain.ResolvedDay {
	for _, src := range r.sources {
		row, ok := src.Lookup(date)
		if !ok {
			continue
		}
		row.Date = date
		day := domain.ResolvedDay{Row: row, Source: src.Name()}
		if h, isHinter := src.(Hinter); isHinter {
			if season, found := h.Hint(date); found {
				day.Hint = season
			}
		}
		return day
	}
	return domain.ResolvedDay{Row: domain.CalendarRow{Date: date}}
}
