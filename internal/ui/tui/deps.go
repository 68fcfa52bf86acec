package tui

import (
	"log/slog"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/ports"
)

// Deps is what the calendar browser needs from the outside.
type Deps struct {
	Calendar ports.CalendarReader
	Path     string
	Seasons  [12]domain.Season

	Logger *slog.Logger
	Debug  bool
}
