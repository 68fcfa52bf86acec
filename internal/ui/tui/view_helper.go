package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// seasonFor returns the hint for the row's month, or a zero Season.
func seasonFor(seasons [12]domain.Season, date domain.NormalizedDate) domain.Season {
	m := date.Month()
	if m < 1 || m > 12 {
		return domain.Season{}
	}
	return seasons[m-1]
}

// renderDay formats one calendar row for the detail pane. Empty rows show
// the seasonal hint so curators know what to fill in.
func renderDay(row domain.CalendarRow, hint domain.Season, th Theme) string {
	var b strings.Builder

	if row.IsEmpty() {
		b.WriteString(th.Empty.Render("No event recorded for this day."))
		b.WriteString("\n\n")
		if hint.Name != "" {
			b.WriteString(th.Label.Render("Season: "))
			b.WriteString(hint.Name)
			b.WriteString("\n")
			b.WriteString(hint.Description)
			b.WriteString("\n")
		}
		return b.String()
	}

	section := func(label, text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		b.WriteString(th.Label.Render(label))
		b.WriteString("\n")
		b.WriteString(text)
		b.WriteString("\n\n")
	}

	section("Подія", row.Title)
	section("Опис", row.Description)
	section("Традиції", row.Traditions)
	section("Як підготуватися", row.Preparation)

	return strings.TrimRight(b.String(), "\n") + "\n"
}
