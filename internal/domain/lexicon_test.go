package domain

import (
	"errors"
	"testing"
)

func TestDefaultLexicon_Valid(t *testing.T) {
	lex := DefaultLexicon()
	if err := lex.Validate(); err != nil {
		t.Fatalf("expected default lexicon to validate, got %v", err)
	}
}

func TestDefaultLexicon_ReturnsCopy(t *testing.T) {
	a := DefaultLexicon()
	a.Pagan[0] = "changed"
	a.Months[0].Full = "changed"

	b := DefaultLexicon()
	if b.Pagan[0] == "changed" || b.Months[0].Full == "changed" {
		t.Fatalf("expected DefaultLexicon to return independent tables")
	}
}

func TestLexicon_ValidateRejectsDuplicateMonth(t *testing.T) {
	lex := DefaultLexicon()
	lex.Months[1].Number = 1
	err := lex.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLexicon_ValidateRejectsEmptyKeywords(t *testing.T) {
	lex := DefaultLexicon()
	lex.Christian = nil
	if err := lex.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLexicon_SeasonFor(t *testing.T) {
	lex := DefaultLexicon()
	s, ok := lex.SeasonFor(6)
	if !ok || s.Name != "Літо" {
		t.Fatalf("expected summer for June, got %+v ok=%v", s, ok)
	}
	if _, ok := lex.SeasonFor(13); ok {
		t.Fatalf("expected no season for month 13")
	}
}
