package ports

import "github.com/aalvaropc/kolovorot/internal/domain"

// LexiconLoader loads month and keyword tables from a source (e.g., filesystem).
type LexiconLoader interface {
	LoadLexicon(path string) (domain.Lexicon, error)
}
