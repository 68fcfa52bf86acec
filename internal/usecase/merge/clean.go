package merge

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// BibliographyMarker opens the trailing literature section of an article.
const BibliographyMarker = "Літ.:"

// Ellipsis is appended to descriptions cut at the length limit.
const Ellipsis = "..."

// DefaultDescriptionLimit is the rune cap applied to extracted descriptions.
const DefaultDescriptionLimit = 1000

var artifacts = strings.NewReplacer(`""""`, "", `"""`, "", ";;;;", "")

// Clean strips quote runs and semicolon separators left by spreadsheet
// exports, then surrounding whitespace and quotes.
func Clean(s string) string {
	s = artifacts.Replace(s)
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '"' || unicode.IsSpace(r)
	})
}

// Describe cleans context, drops everything from the bibliography marker on
// and caps the result at limit runes plus an ellipsis. limit <= 0 disables the cap.
func Describe(context string, limit int) string {
	s := Clean(context)
	if before, _, found := strings.Cut(s, BibliographyMarker); found {
		s = strings.TrimSpace(before)
	}
	if limit > 0 && utf8.RuneCountInString(s) > limit {
		s = string([]rune(s)[:limit]) + Ellipsis
	}
	return s
}
