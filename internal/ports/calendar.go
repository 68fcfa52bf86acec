package ports

import (
	"context"
	"time"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

type CalendarWriter interface {
	WriteCalendar(path string, rows []domain.CalendarRow) error
}

type CalendarReader interface {
	ReadCalendar(path string) ([]domain.CalendarRow, error)
}

// CalendarStore is the relational sink for a built calendar.
type CalendarStore interface {
	Import(ctx context.Context, rows []domain.CalendarRow) (int, error)
	Stats(ctx context.Context) (domain.CalendarStats, error)
	ByDate(ctx context.Context, date domain.NormalizedDate) (domain.CalendarRow, error)
	ByMonth(ctx context.Context, month int) ([]domain.CalendarRow, error)
	Upcoming(ctx context.Context, from time.Time, days int) ([]domain.CalendarRow, error)
}
