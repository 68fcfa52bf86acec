package tui

import "github.com/aalvaropc/kolovorot/internal/domain"

type calendarLoadedMsg struct {
	path string
	rows []domain.CalendarRow
	err  error
}
