package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatPretty, formatJSON, "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type rowJSON struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Traditions  string `json:"traditions,omitempty"`
	Preparation string `json:"preparation,omitempty"`
}

func toRowJSON(rows []domain.CalendarRow) []rowJSON {
	out := make([]rowJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowJSON{
			Date:        r.Date.String(),
			Title:       r.Title,
			Description: r.Description,
			Traditions:  r.Traditions,
			Preparation: r.Preparation,
		})
	}
	return out
}

func printRows(w io.Writer, rows []domain.CalendarRow, format string) error {
	if format == formatJSON {
		return writeJSON(w, toRowJSON(rows))
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "(no events)")
		return nil
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s  %s\n", r.Date, r.Title)
		if r.Description != "" {
			fmt.Fprintf(w, "       %s\n", clamp(r.Description, 120))
		}
		if r.Traditions != "" {
			fmt.Fprintf(w, "       традиції: %s\n", clamp(r.Traditions, 120))
		}
	}
	return nil
}

func printSkips(w io.Writer, skips domain.SkipCounts) {
	if skips.Total() == 0 {
		return
	}
	reasons := make([]string, 0, len(skips))
	for r := range skips {
		reasons = append(reasons, string(r))
	}
	sort.Strings(reasons)

	fmt.Fprintf(w, "Skipped:    %d\n", skips.Total())
	for _, r := range reasons {
		fmt.Fprintf(w, "  - %s: %d\n", r, skips[domain.SkipReason(r)])
	}
}

func clamp(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
