// Package normalize turns raw date mentions into DD.MM keys.
package normalize

import (
	"regexp"
	"strconv"

	"golang.org/x/text/cases"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

var (
	// "17 / 30 січня": the second day sits next to the month name and wins.
	dualRe = regexp.MustCompile(`(\d{1,2})[\s\p{Zs}]*/[\s\p{Zs}]*(\d{1,2})`)
	pairRe = regexp.MustCompile(`(\d{1,2})[\s\p{Zs}]+(\p{L}+)`)
)

// Normalizer maps mention strings to NormalizedDate using a month table.
// It is safe for concurrent use.
type Normalizer struct {
	months map[string]int
}

// New indexes both full and abbreviated month names of lex, case-folded.
func New(lex domain.Lexicon) *Normalizer {
	fold := cases.Fold()
	months := make(map[string]int, len(lex.Months)*2)
	for _, m := range lex.Months {
		months[fold.String(m.Full)] = m.Number
		months[fold.String(m.Abbrev)] = m.Number
	}
	return &Normalizer{months: months}
}

// Normalize returns the DD.MM key for raw, or a skip reason when no
// day + month-word pair exists or the month word is unknown. Day values are
// not range-checked.
func (n *Normalizer) Normalize(raw string) domain.Outcome[domain.NormalizedDate] {
	s := dualRe.ReplaceAllString(raw, "$2")

	m := pairRe.FindStringSubmatch(s)
	if m == nil {
		return domain.Reject[domain.NormalizedDate](domain.SkipMalformedMention)
	}

	month, ok := n.months[cases.Fold().String(m[2])]
	if !ok {
		return domain.Reject[domain.NormalizedDate](domain.SkipUnknownMonth)
	}

	day, err := strconv.Atoi(m[1])
	if err != nil {
		return domain.Reject[domain.NormalizedDate](domain.SkipMalformedMention)
	}
	return domain.Accept(domain.NewDate(day, month))
}
