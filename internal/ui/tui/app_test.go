package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

type fakeReader struct {
	rows []domain.CalendarRow
	err  error
}

func (f fakeReader) ReadCalendar(string) ([]domain.CalendarRow, error) { return f.rows, f.err }

func loadedModel(t *testing.T, rows []domain.CalendarRow) model {
	t.Helper()
	deps := Deps{
		Calendar: fakeReader{rows: rows},
		Path:     "out/calendar.csv",
		Seasons:  domain.DefaultLexicon().Seasons,
	}
	m := newModel(deps)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(model)

	msg := m.Init()()
	next, _ = m.Update(msg)
	return next.(model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

var sampleRows = []domain.CalendarRow{
	{Date: "01.01"},
	{Date: "06.01", Title: "ЩЕДРИЙ ВЕЧІР", Description: "обряд"},
	{Date: "07.01"},
}

func TestModel_LoadsRows(t *testing.T) {
	m := loadedModel(t, sampleRows)

	if !m.loaded || len(m.rows) != 3 {
		t.Fatalf("expected 3 loaded rows, got %d", len(m.rows))
	}
	if got := len(m.days.Items()); got != 3 {
		t.Fatalf("expected 3 list items, got %d", got)
	}
	if !strings.Contains(m.View(), "3 days, 1 filled") {
		t.Fatalf("expected status line in view, got:\n%s", m.View())
	}
}

func TestModel_FilledOnlyToggle(t *testing.T) {
	m := loadedModel(t, sampleRows)

	next, _ := m.Update(key("f"))
	m = next.(model)
	if !m.onlyFilled || len(m.days.Items()) != 1 {
		t.Fatalf("expected one filled item, got %d", len(m.days.Items()))
	}

	next, _ = m.Update(key("f"))
	m = next.(model)
	if m.onlyFilled || len(m.days.Items()) != 3 {
		t.Fatalf("expected all items again, got %d", len(m.days.Items()))
	}
}

func TestModel_OpenAndCloseDetail(t *testing.T) {
	m := loadedModel(t, sampleRows)

	next, _ := m.Update(key("enter"))
	m = next.(model)
	if m.scr != screenDetail {
		t.Fatalf("expected detail screen, got %v", m.scr)
	}
	if !strings.Contains(m.detail.View(), "Зима") {
		t.Fatalf("expected winter hint for empty day, got:\n%s", m.detail.View())
	}

	next, _ = m.Update(key("esc"))
	m = next.(model)
	if m.scr != screenList {
		t.Fatalf("expected list screen after esc, got %v", m.scr)
	}
}

func TestModel_LoadErrorShowsToast(t *testing.T) {
	deps := Deps{Calendar: fakeReader{err: &domain.OpError{
		Op:   "csvcal.read_calendar",
		Kind: domain.KindNotFound,
		Path: "out/calendar.csv",
		Err:  domain.ErrNotFound,
	}}}
	m := newModel(deps)
	next, _ := m.Update(m.Init()())
	m = next.(model)

	if !strings.Contains(m.toast, "Calendar not found") {
		t.Fatalf("expected not-found toast, got %q", m.toast)
	}
}

func TestCmdLoadCalendar_NilReader(t *testing.T) {
	msg := cmdLoadCalendar(Deps{Path: "x"})().(calendarLoadedMsg)
	if msg.err == nil {
		t.Fatal("expected error for nil reader")
	}
}

func TestSafeModel_ForwardsUpdates(t *testing.T) {
	s := wrapSafe(newModel(Deps{Calendar: fakeReader{rows: sampleRows}}), nil)
	next, _ := s.Update(calendarLoadedMsg{rows: sampleRows})
	if got := next.(safeModel).m.rows; len(got) != 3 {
		t.Fatalf("expected rows forwarded to inner model, got %d", len(got))
	}
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"malformed row", &domain.OpError{Op: "csvcal.read_calendar", Kind: domain.KindInvalidInput, Path: "out/calendar.csv:7", Err: domain.ErrInvalidDate}, "Malformed row in calendar.csv line 7"},
		{"malformed file", &domain.OpError{Op: "csvcal.read_calendar", Kind: domain.KindInvalidInput, Path: "out/calendar.csv", Err: errors.New("x")}, "Malformed calendar.csv"},
		{"config", &domain.OpError{Op: "workspacefinder.loadconfig", Kind: domain.KindInvalidConfig, Path: "/w/kolovorot.yaml", Err: errors.New("x")}, "Invalid config at kolovorot.yaml"},
		{"workspace", &domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound, Err: domain.ErrNotFound}, "Workspace not found"},
		{"plain", errors.New("boom"), "Unexpected error (see logs)"},
	}
	for _, c := range cases {
		if got := userMessage(c.err); got != c.want {
			t.Errorf("%s: expected %q, got %q", c.name, c.want, got)
		}
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("колядка", 4); got != "коля…" {
		t.Fatalf("expected rune-safe clamp, got %q", got)
	}
	if got := clampString("abc", 5); got != "abc" {
		t.Fatalf("expected unchanged, got %q", got)
	}
	if got := clampString("abc", 0); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestRenderDay_Sections(t *testing.T) {
	out := renderDay(domain.CalendarRow{Date: "24.12", Title: "КОЛЯДА", Traditions: "кутя"}, domain.Season{}, DefaultTheme())
	if !strings.Contains(out, "КОЛЯДА") || !strings.Contains(out, "кутя") {
		t.Fatalf("expected title and traditions, got:\n%s", out)
	}
	if strings.Contains(out, "Опис") {
		t.Fatalf("expected empty description section omitted, got:\n%s", out)
	}
}
