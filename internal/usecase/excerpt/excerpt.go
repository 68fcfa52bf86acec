// Package excerpt carves the prose window around a date mention and pulls a
// short capitalized event title from it.
package excerpt

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

const (
	DefaultBefore = 300
	DefaultAfter  = 800
)

// A title is a run of 4-50 upper-case Cyrillic letters and spaces followed by a dash.
var titleRe = regexp.MustCompile(`([А-ЯЇІЄҐ][А-ЯЇІЄҐ\s]{3,49})\s*(?:--|—)`)

// Extractor cuts a window of Before runes ahead of a mention start and After
// runes from the mention start onward, clipped to the text.
type Extractor struct {
	Before int
	After  int
}

// New returns an extractor with the given window; non-positive values fall
// back to the defaults.
func New(before, after int) *Extractor {
	if before <= 0 {
		before = DefaultBefore
	}
	if after <= 0 {
		after = DefaultAfter
	}
	return &Extractor{Before: before, After: after}
}

// Extract anchors the window at m.Offset. When the offset does not point at
// m.Text, the first occurrence of m.Text is used instead; when there is none
// the mention is skipped as not located.
func (e *Extractor) Extract(text string, m domain.Mention) domain.Outcome[domain.Excerpt] {
	pos, ok := locate(text, m)
	if !ok {
		return domain.Reject[domain.Excerpt](domain.SkipNotLocated)
	}

	window := text[backRunes(text, pos, e.Before):forwardRunes(text, pos, e.After)]

	return domain.Accept(domain.Excerpt{
		EventName: Title(window),
		Context:   strings.TrimSpace(window),
	})
}

// Title returns the first upper-case dash-terminated run in s, trimmed, or "".
func Title(s string) string {
	m := titleRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func locate(text string, m domain.Mention) (int, bool) {
	if m.Text == "" {
		return 0, false
	}
	if m.Offset >= 0 && m.Offset <= len(text) && strings.HasPrefix(text[m.Offset:], m.Text) {
		return m.Offset, true
	}
	i := strings.Index(text, m.Text)
	return i, i >= 0
}

// backRunes returns the byte index n runes before pos (or 0).
func backRunes(text string, pos, n int) int {
	for ; n > 0 && pos > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(text[:pos])
		pos -= size
	}
	return pos
}

// forwardRunes returns the byte index n runes after pos (or len(text)).
func forwardRunes(text string, pos, n int) int {
	for ; n > 0 && pos < len(text); n-- {
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
	}
	return pos
}
