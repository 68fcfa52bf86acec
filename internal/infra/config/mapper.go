package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

// MapLexicon overlays dto on the built-in lexicon and validates the result.
func MapLexicon(path string, dto YAMLLexicon) (domain.Lexicon, error) {
	lex := domain.DefaultLexicon()

	if len(dto.Months) > 0 {
		lex.Months = make([]domain.MonthName, 0, len(dto.Months))
		for _, m := range dto.Months {
			lex.Months = append(lex.Months, domain.MonthName{
				Number: m.Number,
				Full:   strings.TrimSpace(m.Full),
				Abbrev: strings.TrimSpace(m.Abbrev),
			})
		}
	}
	if len(dto.Pagan) > 0 {
		lex.Pagan = trimAll(dto.Pagan)
	}
	if len(dto.Christian) > 0 {
		lex.Christian = trimAll(dto.Christian)
	}

	for i, s := range dto.Seasons {
		if s.Month < 1 || s.Month > 12 {
			return domain.Lexicon{}, invalidField(path, fmt.Sprintf("seasons[%d].month", i), "month must be 1..12")
		}
		lex.Seasons[s.Month-1] = domain.Season{
			Name:        strings.TrimSpace(s.Name),
			Description: strings.TrimSpace(s.Description),
		}
	}

	if err := lex.Validate(); err != nil {
		return domain.Lexicon{}, &domain.OpError{
			Op:   "config.map",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return lex, nil
}

// trimAll drops blank keywords.
func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
