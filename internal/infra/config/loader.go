// Package config loads optional lexicon files that replace the built-in
// month and keyword tables.
package config

import (
	"os"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/ports"
	"gopkg.in/yaml.v3"
)

type LexiconLoader struct{}

func NewLexiconLoader() *LexiconLoader {
	return &LexiconLoader{}
}

var _ ports.LexiconLoader = (*LexiconLoader)(nil)

// LoadLexicon returns the built-in lexicon for an empty path.
func (LexiconLoader) LoadLexicon(path string) (domain.Lexicon, error) {
	if path == "" {
		return domain.DefaultLexicon(), nil
	}
	return LoadLexicon(path)
}

func LoadLexicon(path string) (domain.Lexicon, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Lexicon{}, &domain.OpError{
			Op:   "config.load_lexicon",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLLexicon
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Lexicon{}, &domain.OpError{
			Op:   "config.load_lexicon",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapLexicon(path, dto)
}
