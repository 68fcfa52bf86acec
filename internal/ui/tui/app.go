package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

type dayItem struct {
	row  domain.CalendarRow
	hint domain.Season
}

func (d dayItem) Title() string {
	if d.row.Title == "" {
		return d.row.Date.String()
	}
	return d.row.Date.String() + "  " + d.row.Title
}

func (d dayItem) Description() string {
	switch {
	case d.row.Description != "":
		return clampString(d.row.Description, 70)
	case !d.row.IsEmpty():
		return clampString(d.row.Traditions+d.row.Preparation, 70)
	case d.hint.Name != "":
		return "(empty) " + d.hint.Name
	default:
		return "(empty)"
	}
}

func (d dayItem) FilterValue() string { return d.row.Date.String() + " " + d.row.Title }

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	days   list.Model
	detail viewport.Model

	rows       []domain.CalendarRow
	onlyFilled bool
	loaded     bool
	toast      string
	width      int
	height     int
}

// Run opens the calendar browser and blocks until the user quits.
func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Kolovorot"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:  DefaultTheme(),
		deps:   deps,
		scr:    screenList,
		days:   l,
		detail: viewport.New(0, 0),
	}
}

func (m model) Init() tea.Cmd { return cmdLoadCalendar(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.days.SetSize(msg.Width-4, msg.Height-8)
		m.detail.Width = msg.Width - 8
		m.detail.Height = msg.Height - 10
		return m, nil

	case calendarLoadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			if m.deps.Logger != nil {
				m.deps.Logger.Error("tui.load_calendar", "path", msg.path, "err", msg.err)
			}
			return m, nil
		}
		m.rows = msg.rows
		m.toast = ""
		return m, m.days.SetItems(m.items())

	case tea.KeyMsg:
		if m.scr == screenList && m.days.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenList {
				return m, tea.Quit
			}
			m.scr = screenList
			return m, nil

		case "esc", "b":
			if m.scr == screenDetail {
				m.scr = screenList
				return m, nil
			}

		case "f":
			if m.scr == screenList {
				m.onlyFilled = !m.onlyFilled
				return m, m.days.SetItems(m.items())
			}

		case "enter":
			if m.scr == screenList {
				it, ok := m.days.SelectedItem().(dayItem)
				if !ok {
					return m, nil
				}
				m.detail.SetContent(renderDay(it.row, it.hint, m.theme))
				m.detail.GotoTop()
				m.scr = screenDetail
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.scr == screenDetail {
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	m.days, cmd = m.days.Update(msg)
	return m, cmd
}

// items lists every row, or only rows with content when onlyFilled is set.
func (m model) items() []list.Item {
	out := make([]list.Item, 0, len(m.rows))
	for _, r := range m.rows {
		if m.onlyFilled && r.IsEmpty() {
			continue
		}
		out = append(out, dayItem{row: r, hint: seasonFor(m.deps.Seasons, r.Date)})
	}
	return out
}

func (m model) filledCount() int {
	n := 0
	for _, r := range m.rows {
		if !r.IsEmpty() {
			n++
		}
	}
	return n
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Kolovorot") + "  " +
		m.theme.Subtitle.Render(m.deps.Path) + "\n"

	status := ""
	switch {
	case m.toast != "":
		status = m.theme.Toast.Render(m.toast)
	case !m.loaded:
		status = m.theme.Help.Render("Loading calendar...")
	default:
		status = m.theme.Help.Render(fmt.Sprintf("%d days, %d filled", len(m.rows), m.filledCount()))
		if m.onlyFilled {
			status += m.theme.Help.Render(" (showing filled only)")
		}
	}

	switch m.scr {
	case screenDetail:
		it, _ := m.days.SelectedItem().(dayItem)
		title := m.theme.Title.Render(it.row.Date.String())
		help := m.theme.Help.Render("↑/↓ scroll • esc/b back • q list")
		return wrap.Render(header + "\n" + m.theme.Card.Render(title+"\n\n"+m.detail.View()) + "\n" + help)

	default:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • f filled only • q quit")
		return wrap.Render(header + status + "\n\n" + m.theme.Card.Render(m.days.View()) + "\n" + help)
	}
}
