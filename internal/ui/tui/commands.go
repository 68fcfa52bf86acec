package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdLoadCalendar(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Calendar == nil {
			return calendarLoadedMsg{path: deps.Path, err: errors.New("calendar reader is nil")}
		}
		rows, err := deps.Calendar.ReadCalendar(deps.Path)
		return calendarLoadedMsg{path: deps.Path, rows: rows, err: err}
	}
}
