// Package daysequence enumerates the days of a calendar year as DD.MM keys.
package daysequence

import (
	"time"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

// Reference years; any leap/non-leap pair yields the same sequence.
const (
	leapYear    = 2024
	regularYear = 2023
)

// Days returns every day of a leap (366) or regular (365) year in calendar order.
func Days(leap bool) []domain.NormalizedDate {
	year := regularYear
	if leap {
		year = leapYear
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	out := make([]domain.NormalizedDate, 0, 366)
	for d := start; d.Year() == year; d = d.AddDate(0, 0, 1) {
		out = append(out, domain.NewDate(d.Day(), int(d.Month())))
	}
	return out
}
