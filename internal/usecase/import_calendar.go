package usecase

import (
	"context"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/ports"
)

// ImportCalendar loads a built calendar file into the calendar store.
type ImportCalendar struct {
	reader ports.CalendarReader
	store  ports.CalendarStore
}

func NewImportCalendar(r ports.CalendarReader, s ports.CalendarStore) *ImportCalendar {
	return &ImportCalendar{reader: r, store: s}
}

type ImportOutput struct {
	Imported int
	Stats    domain.CalendarStats
}

func (uc *ImportCalendar) Execute(ctx context.Context, path string) (ImportOutput, error) {
	rows, err := uc.reader.ReadCalendar(path)
	if err != nil {
		return ImportOutput{}, err
	}

	n, err := uc.store.Import(ctx, rows)
	if err != nil {
		return ImportOutput{}, err
	}

	stats, err := uc.store.Stats(ctx)
	if err != nil {
		return ImportOutput{}, err
	}
	return ImportOutput{Imported: n, Stats: stats}, nil
}
