package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/knoba/confgrid/internal/core/favorites"
	"github.com/knoba/confgrid/internal/core/models"
	"github.com/knoba/confgrid/internal/core/schedule"
	"github.com/knoba/confgrid/internal/core/tags"
	"github.com/knoba/confgrid/internal/core/timetable"
)

type viewMode int

const (
	gridView viewMode = iota
	helpView
)

// tickMsg drives the once-a-minute recompute of the time cursor.
type tickMsg time.Time

func minuteTick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	store    *favorites.Store
	tagTable tags.Table
	loc      *time.Location

	mode viewMode
	day  string

	sessions []models.Session
	grid     *timetable.Grid
	favs     []string

	// Selected cell: slot row and location column.
	selRow int
	selCol int

	now      time.Time
	width    int
	height   int
	viewport viewport.Model
	ready    bool
	status   string
	err      error
}

func New(store *favorites.Store, table tags.Table, loc *time.Location) Model {
	m := Model{
		store:    store,
		tagTable: table,
		loc:      loc,
		mode:     gridView,
		now:      time.Now().In(loc),
	}
	m.setDay(schedule.DefaultDay)
	return m
}

func (m Model) Init() tea.Cmd {
	return minuteTick()
}

// setDay switches the active day. Favorites are always re-read from the
// store, never carried over in memory across days.
func (m *Model) setDay(day string) {
	m.day = day
	m.sessions = schedule.Load(day)
	m.grid = timetable.Build(m.sessions, m.loc, timetable.DefaultMetrics())
	m.favs = m.store.Load(day)
	m.status = ""
	if len(m.grid.Skipped) > 0 {
		m.status = fmt.Sprintf("skipped %d session(s) with bad timestamps", len(m.grid.Skipped))
	}
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if m.selRow < 0 {
		m.selRow = 0
	}
	if m.selRow >= timetable.SlotCount {
		m.selRow = timetable.SlotCount - 1
	}
	if m.selCol < 0 {
		m.selCol = 0
	}
	if n := len(m.grid.Locations); n > 0 && m.selCol >= n {
		m.selCol = n - 1
	}
}

// sessionAt resolves the session occupying a cell: one that starts there,
// or one from an earlier slot whose height spans into it.
func (m *Model) sessionAt(row, col int) *timetable.Placed {
	for slot := row; slot >= 0; slot-- {
		cell := m.grid.AtColumn(slot, col)
		for i := range cell {
			if slot+timetable.RowSpan(cell[i]) > row {
				return &cell[i]
			}
		}
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width, m.bodyHeight())
		m.ready = true
		m.viewport.SetContent(m.renderBody())
		return m, nil

	case tickMsg:
		m.now = time.Time(msg).In(m.loc)
		m.syncViewport()
		// Reschedule only while the program is running; quitting drops
		// the pending tick with the program.
		return m, minuteTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.mode == gridView {
				return m, tea.Quit
			}
			m.mode = gridView
			return m, nil

		case "?":
			if m.mode == helpView {
				m.mode = gridView
			} else {
				m.mode = helpView
			}
			return m, nil
		}

		if m.mode == helpView {
			return m.updateHelp(msg)
		}
		return m.updateGrid(msg)
	}

	return m, nil
}

func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1", "2", "3", "4":
		days := schedule.Days()
		m.setDay(days[int(msg.String()[0]-'1')])

	case "tab":
		m.setDay(nextDay(m.day, 1))

	case "shift+tab":
		m.setDay(nextDay(m.day, -1))

	case "up", "k":
		m.selRow--
		m.clampSelection()

	case "down", "j":
		m.selRow++
		m.clampSelection()

	case "left", "h":
		m.selCol--
		m.clampSelection()

	case "right", "l":
		m.selCol++
		m.clampSelection()

	case "g":
		m.selRow = 0

	case "G":
		m.selRow = timetable.SlotCount - 1

	case "enter", " ":
		p := m.sessionAt(m.selRow, m.selCol)
		if p == nil {
			m.status = "no session in this cell"
			break
		}
		favs, err := m.store.Toggle(m.day, p.Session.Title)
		if err != nil {
			m.err = err
			break
		}
		m.favs = favs
		if favorites.Contains(favs, p.Session.Title) {
			m.status = "favorited: " + p.Session.Title
		} else {
			m.status = "unfavorited: " + p.Session.Title
		}

	case "y":
		p := m.sessionAt(m.selRow, m.selCol)
		if p == nil {
			m.status = "no session in this cell"
			break
		}
		if err := clipboard.WriteAll(sessionText(*p)); err != nil {
			m.err = err
			break
		}
		m.status = "copied to clipboard"
	}

	m.syncViewport()
	return m, nil
}

// syncViewport re-renders the grid body and keeps the selected row visible.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.Height = m.bodyHeight()
	m.viewport.SetContent(m.renderBody())
	if m.selRow < m.viewport.YOffset {
		m.viewport.SetYOffset(m.selRow)
	} else if m.selRow >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.selRow - m.viewport.Height + 1)
	}
}

func nextDay(day string, step int) string {
	days := schedule.Days()
	for i, d := range days {
		if d == day {
			return days[(i+step+len(days))%len(days)]
		}
	}
	return schedule.DefaultDay
}

// sessionText is the plain-text form used for clipboard yanks.
func sessionText(p timetable.Placed) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s  %s\n", p.Start.Format("15:04"), p.End.Format("15:04"), p.Session.Title)
	if p.Session.Type != "" {
		fmt.Fprintf(&b, "Type: %s\n", p.Session.Type)
	}
	fmt.Fprintf(&b, "Location: %s\n", p.Session.Location)
	if p.Session.Speakers != "" {
		fmt.Fprintf(&b, "Speakers: %s\n", p.Session.Speakers)
	}
	if len(p.Session.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(p.Session.Tags, ", "))
	}
	return b.String()
}
