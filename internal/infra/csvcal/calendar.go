package csvcal

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/ports"
)

// CalendarFile reads and writes built calendars.
type CalendarFile struct{}

func NewCalendarFile() *CalendarFile {
	return &CalendarFile{}
}

var (
	_ ports.CalendarWriter = (*CalendarFile)(nil)
	_ ports.CalendarReader = (*CalendarFile)(nil)
)

// WriteCalendar writes the header and one line per row.
func (CalendarFile) WriteCalendar(path string, rows []domain.CalendarRow) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return writeErr(path, err)
	}
	for _, r := range rows {
		rec := []string{r.Date.String(), r.Title, r.Description, r.Traditions, r.Preparation}
		if err := w.Write(rec); err != nil {
			return writeErr(path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return writeErr(path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return writeErr(path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return writeErr(tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return writeErr(path, err)
	}
	return nil
}

// ReadCalendar reads a file produced by WriteCalendar. Any malformed date
// fails the whole read.
func (CalendarFile) ReadCalendar(path string) ([]domain.CalendarRow, error) {
	t, err := readTable("csvcal.read_calendar", path)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.CalendarRow, 0, len(t.records))
	for i, rec := range t.records {
		date, err := domain.ParseDate(t.get(rec, ColDate))
		if err != nil {
			return nil, &domain.OpError{
				Op:   "csvcal.read_calendar",
				Kind: domain.KindInvalidInput,
				Path: fmt.Sprintf("%s:%d", path, i+2),
				Err:  err,
			}
		}
		rows = append(rows, domain.CalendarRow{
			Date:        date,
			Title:       t.get(rec, ColTitle),
			Description: t.get(rec, ColDescription),
			Traditions:  t.get(rec, ColTraditions),
			Preparation: t.get(rec, ColPreparation),
		})
	}
	return rows, nil
}

func writeErr(path string, err error) error {
	return &domain.OpError{
		Op:   "csvcal.write_calendar",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}
