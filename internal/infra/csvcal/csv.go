// Package csvcal reads curated entries and reads/writes built calendars as
// CSV with the Ukrainian column headers used by the published datasets.
package csvcal

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

// Column headers, in file order.
const (
	ColDate        = "Дата"
	ColTitle       = "Подія"
	ColDescription = "Опис"
	ColTraditions  = "Традиції"
	ColPreparation = "Як підготуватися"
)

// Header is the column row written by WriteCalendar.
var Header = []string{ColDate, ColTitle, ColDescription, ColTraditions, ColPreparation}

// table is a header-indexed view over CSV records.
type table struct {
	cols    map[string]int
	records [][]string
}

func (t table) get(rec []string, col string) string {
	i, ok := t.cols[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func readTable(op, path string) (table, error) {
	f, err := os.Open(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, os.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return table{}, &domain.OpError{Op: op, Kind: kind, Path: path, Err: err}
	}
	defer f.Close()

	t, err := parseTable(f)
	if err != nil {
		return table{}, &domain.OpError{Op: op, Kind: domain.KindInvalidInput, Path: path, Err: err}
	}
	return t, nil
}

func parseTable(r io.Reader) (table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return table{}, errors.New("missing header row")
		}
		return table{}, err
	}

	t := table{cols: map[string]int{}}
	for i, h := range head {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		t.cols[h] = i
	}
	if _, ok := t.cols[ColDate]; !ok {
		return table{}, errors.New("missing " + ColDate + " column")
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return table{}, err
		}
		t.records = append(t.records, rec)
	}
	return t, nil
}

// trimField strips surrounding whitespace and quote characters.
func trimField(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"`))
}
