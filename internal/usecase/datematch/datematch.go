// Package datematch finds day + month-name mentions in free-form prose.
package datematch

import (
	"iter"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

// space covers ASCII whitespace plus no-break and other Unicode separators,
// which e-book markup emits between a number and a month name.
const space = `[\s\p{Zs}]`

type pattern struct {
	name string
	re   *regexp.Regexp
	// boundary requires a non-word rune (or end of text) right after the match.
	boundary bool
}

// Matcher scans text with a fixed, ordered set of patterns built from a lexicon.
// A Matcher is safe for concurrent use.
type Matcher struct {
	patterns []pattern
}

// New compiles the patterns for the given month table.
func New(lex domain.Lexicon) *Matcher {
	full := make([]string, 0, len(lex.Months))
	abbrev := make([]string, 0, len(lex.Months))
	for _, m := range lex.Months {
		full = append(full, regexp.QuoteMeta(m.Full))
		abbrev = append(abbrev, regexp.QuoteMeta(m.Abbrev))
	}
	fullAlt := strings.Join(full, "|")
	abbrevAlt := strings.Join(abbrev, "|")

	return &Matcher{
		patterns: []pattern{
			{
				name: "full",
				re:   regexp.MustCompile(`(?i)\d{1,2}` + space + `+(?:` + fullAlt + `)`),
			},
			{
				name: "dual",
				re:   regexp.MustCompile(`(?i)\d{1,2}` + space + `*/` + space + `*\d{1,2}` + space + `+(?:` + fullAlt + `)`),
			},
			{
				name:     "abbrev",
				re:       regexp.MustCompile(`(?i)\d{1,2}` + space + `+(?:` + abbrevAlt + `)`),
				boundary: true,
			},
		},
	}
}

// Mentions returns every match of every pattern. Patterns are applied in order
// (full, dual, abbreviated) and each one scans left to right; overlapping
// matches from different patterns are all kept. The sequence is recomputed on
// every iteration.
func (m *Matcher) Mentions(text string) iter.Seq[domain.Mention] {
	return func(yield func(domain.Mention) bool) {
		for _, p := range m.patterns {
			if !p.scan(text, yield) {
				return
			}
		}
	}
}

// Find collects Mentions into a slice.
func (m *Matcher) Find(text string) []domain.Mention {
	var out []domain.Mention
	for mention := range m.Mentions(text) {
		out = append(out, mention)
	}
	return out
}

func (p pattern) scan(text string, yield func(domain.Mention) bool) bool {
	pos := 0
	for pos <= len(text) {
		loc := p.re.FindStringIndex(text[pos:])
		if loc == nil {
			return true
		}
		start, end := pos+loc[0], pos+loc[1]

		if p.boundary && !atWordBoundary(text, end) {
			// Retry one rune further so a later start inside this span can still match.
			_, size := utf8.DecodeRuneInString(text[start:])
			pos = start + size
			continue
		}

		if !yield(domain.Mention{Text: text[start:end], Offset: start}) {
			return false
		}
		if end == start {
			end++
		}
		pos = end
	}
	return true
}

func atWordBoundary(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}
