package excerpt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

func mentionAt(text, sub string) domain.Mention {
	return domain.Mention{Text: sub, Offset: strings.Index(text, sub)}
}

func TestExtract_EventName(t *testing.T) {
	text := "КОЛЯДА -- давнє свято зимового сонцестояння, яке святкували 25 грудня."
	got := New(300, 800).Extract(text, mentionAt(text, "25 грудня"))
	if !got.OK() {
		t.Fatalf("expected excerpt, got skip %s", got.Reason)
	}
	if got.Value.EventName != "КОЛЯДА" {
		t.Fatalf("expected event name КОЛЯДА, got %q", got.Value.EventName)
	}
	if got.Value.Context != text {
		t.Fatalf("expected whole short text as context, got %q", got.Value.Context)
	}
}

func TestExtract_NoTitle(t *testing.T) {
	text := "звичайний текст 7 січня без заголовка"
	got := New(300, 800).Extract(text, mentionAt(text, "7 січня"))
	if !got.OK() {
		t.Fatalf("expected excerpt, got skip %s", got.Reason)
	}
	if got.Value.EventName != "" {
		t.Fatalf("expected empty event name, got %q", got.Value.EventName)
	}
}

func TestExtract_WindowBounds(t *testing.T) {
	before := strings.Repeat("а", 500)
	after := strings.Repeat("б", 1500)
	mention := "30 січня"
	text := before + mention + after

	m := domain.Mention{Text: mention, Offset: len(before)}
	got := New(300, 800).Extract(text, m)
	if !got.OK() {
		t.Fatalf("expected excerpt, got skip %s", got.Reason)
	}

	ctx := got.Value.Context
	if n := utf8.RuneCountInString(ctx); n != 300+800 {
		t.Fatalf("expected 1100 runes, got %d", n)
	}
	if !strings.HasPrefix(ctx, strings.Repeat("а", 300)+mention) {
		t.Fatalf("expected window to start 300 runes before the mention")
	}
	if limit := 300 + utf8.RuneCountInString(mention) + 800; utf8.RuneCountInString(ctx) > limit {
		t.Fatalf("window exceeds %d runes", limit)
	}
}

func TestExtract_ClipsAtTextEdges(t *testing.T) {
	text := "1 лютого" + strings.Repeat("в", 10)
	got := New(300, 800).Extract(text, domain.Mention{Text: "1 лютого", Offset: 0})
	if !got.OK() {
		t.Fatalf("expected excerpt, got skip %s", got.Reason)
	}
	if got.Value.Context != text {
		t.Fatalf("expected clipped window to equal text, got %q", got.Value.Context)
	}

	tail := strings.Repeat("г", 10) + "2 лютого"
	got = New(300, 800).Extract(tail, mentionAt(tail, "2 лютого"))
	if got.Value.Context != tail {
		t.Fatalf("expected clipped window to equal text, got %q", got.Value.Context)
	}
}

func TestExtract_UsesOffsetNotFirstOccurrence(t *testing.T) {
	first := "ДАВНІЙ ЗВИЧАЙ -- 7 січня згадано вперше."
	filler := strings.Repeat(" ", 400)
	second := "КОЛЯДНИКИ -- ходять 7 січня."
	text := first + filler + second

	m := domain.Mention{Text: "7 січня", Offset: strings.LastIndex(text, "7 січня")}
	got := New(20, 40).Extract(text, m)
	if !got.OK() {
		t.Fatalf("expected excerpt, got skip %s", got.Reason)
	}
	if got.Value.EventName != "КОЛЯДНИКИ" {
		t.Fatalf("expected window anchored on the second occurrence, got %q", got.Value.EventName)
	}
}

func TestExtract_StaleOffsetFallsBackToSearch(t *testing.T) {
	text := "ІВАНА КУПАЛА -- 7 липня."
	got := New(300, 800).Extract(text, domain.Mention{Text: "7 липня", Offset: 9999})
	if !got.OK() || got.Value.EventName != "ІВАНА КУПАЛА" {
		t.Fatalf("expected fallback search to locate mention, got %+v", got)
	}
}

func TestExtract_NotLocated(t *testing.T) {
	got := New(300, 800).Extract("нічого тут немає", domain.Mention{Text: "1 січня", Offset: 0})
	if got.OK() {
		t.Fatalf("expected skip")
	}
	if got.Reason != domain.SkipNotLocated {
		t.Fatalf("expected %s, got %s", domain.SkipNotLocated, got.Reason)
	}
}

func TestTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"МАЛАНКА -- свято", "МАЛАНКА"},
		{"текст ЗЕЛЕНІ СВЯТА — обряди", "ЗЕЛЕНІ СВЯТА"},
		{"ДІ --", ""}, // run too short
		{"ВЕЛИКДЕНЬ без тире", ""},
	}
	for _, c := range cases {
		if got := Title(c.in); got != c.want {
			t.Errorf("Title(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	e := New(0, -1)
	if e.Before != DefaultBefore || e.After != DefaultAfter {
		t.Fatalf("expected defaults, got %d/%d", e.Before, e.After)
	}
}
