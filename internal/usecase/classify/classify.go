// Package classify decides whether an event context reads as pagan-origin.
package classify

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

// Typographic apostrophes are common in e-book text ("слов’ян").
var apostrophes = strings.NewReplacer("\u2019", "'", "\u02bc", "'")

// Classifier matches case-folded keyword stems by plain substring containment.
// Christian markers always override pagan ones.
type Classifier struct {
	christian []string
	pagan     []string
}

// New folds the keyword sets of lex once up front.
func New(lex domain.Lexicon) *Classifier {
	return &Classifier{
		christian: foldAll(lex.Christian),
		pagan:     foldAll(lex.Pagan),
	}
}

// Classify returns the verdict for context. No word-boundary check is made, so
// a stem inside a longer unrelated word still counts.
func (c *Classifier) Classify(context string) domain.Verdict {
	folded := cases.Fold().String(apostrophes.Replace(context))

	if containsAny(folded, c.christian) {
		return domain.Verdict{Pagan: false, ChristianExcluded: true}
	}
	return domain.Verdict{Pagan: containsAny(folded, c.pagan)}
}

func containsAny(s string, stems []string) bool {
	for _, k := range stems {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func foldAll(in []string) []string {
	fold := cases.Fold()
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, fold.String(apostrophes.Replace(s)))
		}
	}
	return out
}
