package csvcal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "curated.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadCurated_ParsesAndSkips(t *testing.T) {
	path := writeCSV(t, "\ufeffДата,Подія,Опис,Традиції,Як підготуватися\n"+
		"1.1,Новий рік, опис ,кутя,\n"+
		`"07.01","""Різдво""",Світле свято,,Зварити кутю`+"\n"+
		";;;;\n"+
		",,,,\n"+
		"32.01,x,,,\n"+
		"1.13,x,,,\n"+
		"a.b,x,,,\n"+
		"5. 3 ,Дата з пробілами,,,\n"+
		"1.1,Пізніше,,,\n")

	entries, skips, err := NewCuratedReader().LoadCurated(path)
	if err != nil {
		t.Fatalf("LoadCurated error: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d: %+v", len(entries), entries)
	}
	if got := entries["01.01"]; got.Title != "Пізніше" {
		t.Fatalf("expected later duplicate to win, got %+v", got)
	}
	want := domain.CuratedEntry{Title: "Різдво", Description: "Світле свято", Preparation: "Зварити кутю"}
	if got := entries["07.01"]; got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got := entries["05.03"]; got.Title != "Дата з пробілами" {
		t.Fatalf("expected spaced date accepted, got %+v", entries)
	}

	if len(skips) != 5 {
		t.Fatalf("expected 5 skips, got %d: %+v", len(skips), skips)
	}
	for _, s := range skips {
		if s.Reason != domain.SkipMalformedCuratedDate {
			t.Fatalf("unexpected skip reason %q", s.Reason)
		}
	}
	if !strings.HasSuffix(skips[0].Source, ":4") || skips[0].Detail != ";;;;" {
		t.Fatalf("expected skip with line number, got %+v", skips[0])
	}
}

func TestLoadCurated_FieldsTrimmed(t *testing.T) {
	path := writeCSV(t, "Дата,Подія,Опис,Традиції,Як підготуватися\n"+
		`2.2,"  ""Стрітення""  ", опис ,"""вогонь""", `+"\n")

	entries, _, err := NewCuratedReader().LoadCurated(path)
	if err != nil {
		t.Fatalf("LoadCurated error: %v", err)
	}
	want := domain.CuratedEntry{Title: "Стрітення", Description: "опис", Traditions: "вогонь"}
	if got := entries["02.02"]; got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLoadCurated_RequireContent(t *testing.T) {
	long := strings.Repeat("я", 51)
	path := writeCSV(t, "Дата,Подія,Опис,Традиції,Як підготуватися\n"+
		"3.3,,коротко,,\n"+
		"4.4,,"+long+",,\n"+
		"5.5,Назва,,,\n"+
		"6.6,,"+strings.Repeat("я", 50)+",,\n")

	entries, skips, err := NewCuratedReader(WithRequireContent(true)).LoadCurated(path)
	if err != nil {
		t.Fatalf("LoadCurated error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", entries)
	}
	if _, ok := entries["04.04"]; !ok {
		t.Fatalf("expected long description kept")
	}
	if _, ok := entries["05.05"]; !ok {
		t.Fatalf("expected titled row kept")
	}
	if len(skips) != 2 || skips[0].Reason != domain.SkipEmptyCuratedEntry {
		t.Fatalf("expected 2 empty-entry skips, got %+v", skips)
	}

	// Without the option every dated row is kept.
	entries, _, err = NewCuratedReader().LoadCurated(path)
	if err != nil || len(entries) != 4 {
		t.Fatalf("expected 4 entries without the option, got %d (%v)", len(entries), err)
	}
}

func TestLoadCurated_Errors(t *testing.T) {
	_, _, err := NewCuratedReader().LoadCurated(filepath.Join(t.TempDir(), "missing.csv"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}

	_, _, err = NewCuratedReader().LoadCurated(writeCSV(t, "Date,Event\n1.1,x\n"))
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput for missing date column, got %v", err)
	}

	_, _, err = NewCuratedReader().LoadCurated(writeCSV(t, ""))
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput for empty file, got %v", err)
	}
}

func TestCuratedDate(t *testing.T) {
	cases := []struct {
		in   string
		want domain.NormalizedDate
		ok   bool
	}{
		{"1.1", "01.01", true},
		{`"29"."02"`, "29.02", true},
		{" 31.12 ", "31.12", true},
		{`""";;;;`, "", false},
		{"1.1.2024", "", false},
		{"0.5", "", false},
		{"15", "", false},
	}
	for _, c := range cases {
		got, ok := curatedDate(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("curatedDate(%q) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}
