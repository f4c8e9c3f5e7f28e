package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/knoba/confgrid/internal/core/favorites"
	"github.com/knoba/confgrid/internal/core/timetable"
)

const (
	gutterWidth = 7 // "19:30  "
	minColWidth = 12
)

func (m Model) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit"
	}

	switch m.mode {
	case helpView:
		return m.viewHelp()
	default:
		return m.viewGrid()
	}
}

func (m Model) viewGrid() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// bodyHeight is the viewport height: total minus header (2 lines) and
// footer (4 lines).
func (m Model) bodyHeight() int {
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) colWidth() int {
	n := len(m.grid.Locations)
	if n == 0 {
		return minColWidth
	}
	w := (m.width - gutterWidth) / n
	if w < minColWidth {
		w = minColWidth
	}
	return w
}

func (m Model) renderHeader() string {
	// Day tabs
	var tabs []string
	for i, day := range dayLabels() {
		style := dayTabStyle
		if m.day == fmt.Sprintf("day%d", i+1) {
			style = dayTabActiveStyle
		}
		tabs = append(tabs, style.Render(day))
	}
	top := titleStyle.Render("confgrid") + "  " + strings.Join(tabs, "")

	// Column headers
	w := m.colWidth()
	cols := make([]string, 0, len(m.grid.Locations)+1)
	cols = append(cols, strings.Repeat(" ", gutterWidth))
	for i, loc := range m.grid.Locations {
		label := truncate(loc, w-1)
		if i == m.selCol {
			label = columnHeaderStyle.Underline(true).Render(pad(label, w))
		} else {
			label = columnHeaderStyle.Render(pad(label, w))
		}
		cols = append(cols, label)
	}

	return top + "\n" + strings.Join(cols, "")
}

func (m Model) renderBody() string {
	w := m.colWidth()
	nowSlot, nowVisible := timetable.SlotIndex(m.now)

	rows := make([]string, 0, timetable.SlotCount)
	for row, slot := range m.grid.Slots {
		gutter := timeGutterStyle.Render(pad(slot.Label(), gutterWidth))
		if nowVisible && row == nowSlot {
			// The live cursor row; hidden entirely outside 08:00-20:00.
			gutter = timeNowStyle.Render(pad("▶"+slot.Label(), gutterWidth))
		}

		cells := make([]string, 0, len(m.grid.Locations)+1)
		cells = append(cells, gutter)
		for col := range m.grid.Locations {
			cells = append(cells, m.renderCell(row, col, w))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderCell(row, col, w int) string {
	selected := row == m.selRow && col == m.selCol

	cell := m.grid.AtColumn(row, col)
	if len(cell) > 0 {
		p := cell[0]
		label := truncate(p.Session.Title, w-2)
		if p.Short {
			label = truncate(p.Session.Title, w-7) + " 30min"
		}
		if len(cell) > 1 {
			label = fmt.Sprintf("%s +%d", truncate(p.Session.Title, w-5), len(cell)-1)
		}

		style := sessionStyle
		if favorites.Contains(m.favs, p.Session.Title) {
			style = favoriteStyle
		}
		if selected {
			style = selectedStyle
		}
		return style.Render(pad(" "+label, w))
	}

	// Continuation of a longer session from an earlier slot
	if p := m.sessionAt(row, col); p != nil {
		style := continuationStyle
		if selected {
			style = selectedStyle
		}
		return style.Render(pad(" │", w))
	}

	if selected {
		return selectedStyle.Render(pad("", w))
	}
	return pad("", w)
}

func (m Model) renderFooter() string {
	detail := footerMetaStyle.Render("empty slot")
	if p := m.sessionAt(m.selRow, m.selCol); p != nil {
		var meta []string
		meta = append(meta, fmt.Sprintf("%s - %s", p.Start.Format("15:04"), p.End.Format("15:04")))
		if p.Session.Type != "" {
			meta = append(meta, p.Session.Type)
		}
		meta = append(meta, p.Session.Location)
		if p.Session.Speakers != "" {
			meta = append(meta, p.Session.Speakers)
		}

		badges := make([]string, 0, len(p.Session.Tags)+1)
		if p.Short {
			badges = append(badges, shortBadgeStyle.Render(" 30min "))
		}
		for _, tag := range p.Session.Tags {
			badge := m.tagTable.Resolve(tag)
			badges = append(badges, badgeStyle(badge.Color).Render(badge.Label))
		}

		detail = footerTitleStyle.Render(p.Session.Title) + "\n" +
			footerMetaStyle.Render(strings.Join(meta, " | "))
		if len(badges) > 0 {
			detail += " " + strings.Join(badges, " ")
		}
	} else {
		detail = "\n" + detail
	}

	status := m.status
	if status == "" {
		if _, visible := timetable.SlotIndex(m.now); visible {
			status = "now: " + m.now.Format("15:04")
		}
	}

	return detail + "\n" +
		statusStyle.Render(status) + "\n" +
		helpStyle.Render("1-4/tab: day • arrows: move • enter: favorite • y: copy • ?: help • q: quit")
}

func dayLabels() []string {
	return []string{"Day1", "Day2", "Day3", "Day4"}
}

func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

func pad(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
