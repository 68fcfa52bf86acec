package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/infra/bucketstore"
	"github.com/aalvaropc/kolovorot/internal/usecase/merge"
)

func TestBuildCalendar_MergesSourcesInDayOrder(t *testing.T) {
	curated := fakeCurated{
		entries: map[domain.NormalizedDate]domain.CuratedEntry{
			"07.01": {Title: "Різдво", Traditions: "кутя"},
		},
		skips: []domain.Skip{{Reason: domain.SkipMalformedCuratedDate, Source: "curated.csv:9"}},
	}
	store := &fakeBucketStore{load: domain.DateEventBucket{
		"07.01": {{Date: "07.01", EventName: "ІГНОРОВАНО", IsPagan: true}},
		"24.12": {
			{Date: "24.12", EventName: "ВЕЧІР", Context: "звичайний"},
			{Date: "24.12", EventName: "КОЛЯДА", Context: `""""обряд колядування Літ.: джерела`, IsPagan: true},
		},
	}}
	writer := &fakeWriter{}
	rec := &fakeRecorder{}

	uc := NewBuildCalendar(curated, store, writer, domain.DefaultLexicon(), WithBuildRecorder(rec))
	out, err := uc.Execute(context.Background(), BuildOptions{
		CuratedPath: "data/curated.csv",
		OutPath:     "out/calendar.csv",
		Days:        []domain.NormalizedDate{"01.01", "07.01", "24.12"},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	r := out.Report
	if r.Days != 3 || r.Curated != 1 || r.Extracted != 1 || r.Placeholder != 1 {
		t.Fatalf("unexpected report %+v", r)
	}
	if r.Skips[domain.SkipMalformedCuratedDate] != 1 {
		t.Fatalf("expected curated skip counted, got %v", r.Skips)
	}

	if writer.path != "out/calendar.csv" || len(writer.rows) != 3 {
		t.Fatalf("expected 3 rows written to out/calendar.csv, got %d to %q", len(writer.rows), writer.path)
	}
	want := []domain.CalendarRow{
		{Date: "01.01"},
		{Date: "07.01", Title: "Різдво", Traditions: "кутя"},
		{Date: "24.12", Title: "КОЛЯДА", Description: "обряд колядування"},
	}
	for i := range want {
		if writer.rows[i] != want[i] {
			t.Fatalf("row %d: expected %+v, got %+v", i, want[i], writer.rows[i])
		}
	}

	if out.Days[0].Source != merge.SourcePlaceholder || out.Days[0].Hint.Name != "Зима" {
		t.Fatalf("expected placeholder with winter hint, got %+v", out.Days[0])
	}
	if len(rec.builds) != 1 || rec.flushes != 1 {
		t.Fatalf("expected one recorded build")
	}
}

func TestBuildCalendar_MissingInputsAreEmpty(t *testing.T) {
	notFound := &domain.OpError{Op: "fake", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	curated := fakeCurated{err: notFound}
	store := &fakeBucketStore{loadErr: notFound}
	writer := &fakeWriter{}

	out, err := NewBuildCalendar(curated, store, writer, domain.DefaultLexicon()).Execute(context.Background(), BuildOptions{
		Days: []domain.NormalizedDate{"01.01", "02.01"},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if out.Report.Placeholder != 2 || len(writer.rows) != 2 {
		t.Fatalf("expected 2 placeholder rows, got %+v", out.Report)
	}
}

func TestBuildCalendar_Errors(t *testing.T) {
	days := []domain.NormalizedDate{"01.01"}
	boom := errors.New("boom")

	cases := []struct {
		name    string
		curated fakeCurated
		store   *fakeBucketStore
		writer  *fakeWriter
	}{
		{"curated", fakeCurated{err: &domain.OpError{Op: "x", Kind: domain.KindInvalidInput, Err: boom}}, &fakeBucketStore{}, &fakeWriter{}},
		{"bucket", fakeCurated{}, &fakeBucketStore{loadErr: &domain.OpError{Op: "x", Kind: domain.KindInvalidInput, Err: boom}}, &fakeWriter{}},
		{"writer", fakeCurated{}, &fakeBucketStore{}, &fakeWriter{err: boom}},
	}
	for _, c := range cases {
		_, err := NewBuildCalendar(c.curated, c.store, c.writer, domain.DefaultLexicon()).Execute(context.Background(), BuildOptions{Days: days})
		if !errors.Is(err, boom) {
			t.Fatalf("%s: expected boom, got %v", c.name, err)
		}
	}
}

func TestBuildCalendar_DescriptionLimit(t *testing.T) {
	store := &fakeBucketStore{load: domain.DateEventBucket{
		"01.01": {{Date: "01.01", Context: strings.Repeat("я", 1500)}},
	}}
	writer := &fakeWriter{}
	uc := NewBuildCalendar(fakeCurated{}, store, writer, domain.DefaultLexicon())

	if _, err := uc.Execute(context.Background(), BuildOptions{Days: []domain.NormalizedDate{"01.01"}}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if got := []rune(writer.rows[0].Description); len(got) != 1000+len(merge.Ellipsis) {
		t.Fatalf("expected default 1000-rune cap, got %d runes", len(got))
	}

	if _, err := uc.Execute(context.Background(), BuildOptions{Days: []domain.NormalizedDate{"01.01"}, DescriptionLimit: 10}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if writer.rows[0].Description != strings.Repeat("я", 10)+merge.Ellipsis {
		t.Fatalf("expected 10-rune cap, got %q", writer.rows[0].Description)
	}
}

func TestBuildCalendar_LoadsBucketWithZeroDay(t *testing.T) {
	lex := domain.DefaultLexicon()
	store := bucketstore.NewJSONStore(t.TempDir(), domain.DefaultConfig())
	corpus := &fakeCorpus{
		order: []string{"a.html"},
		docs:  map[string]string{"a.html": "Було це 100 травня, а потім 12 травня КУПАЛО -- свято."},
	}

	ex, err := NewExtractCorpus(corpus, store, NewPipeline(lex, 300, 800)).Execute(context.Background())
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if len(ex.Bucket["00.05"]) != 1 || len(ex.Bucket["12.05"]) != 1 {
		t.Fatalf("expected records for 00.05 and 12.05, got %v", ex.Bucket.Dates())
	}

	writer := &fakeWriter{}
	out, err := NewBuildCalendar(fakeCurated{}, store, writer, lex).Execute(context.Background(), BuildOptions{
		Days: []domain.NormalizedDate{"11.05", "12.05"},
	})
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if out.Report.Extracted != 1 || writer.rows[1].Title != "КУПАЛО" {
		t.Fatalf("expected 12.05 filled from the bucket, got %+v / %+v", out.Report, writer.rows)
	}
}
