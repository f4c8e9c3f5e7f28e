package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?":
		m.mode = gridView
	}
	return m, nil
}

func (m Model) viewHelp() string {
	help := `
confgrid - Help
═══════════════

DAY SELECTION
─────────────
  1-4          Jump to Day1..Day4
  tab          Next day
  shift+tab    Previous day

GRID
────
  ↑/↓, j/k     Move between time slots
  ←/→, h/l     Move between locations
  g/G          Jump to 08:00 / 19:30
  Enter, space Toggle favorite for the selected session
  y            Copy session details to clipboard

Favorites are stored per day; switching days always reloads
that day's saved set. The red ▶ marks the current half hour
and refreshes every minute (hidden outside 08:00-20:00).

  ?            Close this help
  q            Quit

Press any key to return to the grid
`
	return helpStyle.Render(help)
}
