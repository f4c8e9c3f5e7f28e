// Package timetable turns a flat list of sessions into a positioned
// time-by-location grid. The display window is fixed: 24 half-hour slots
// from 08:00 to 19:30 in the configured display timezone. Sessions that
// start outside the window are never placed.
package timetable

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/knoba/confgrid/internal/core/models"
)

const (
	// WindowStartHour is the first displayed hour.
	WindowStartHour = 8
	// WindowEndHour is the first hour past the display window.
	WindowEndHour = 20
	// SlotMinutes is the grid granularity.
	SlotMinutes = 30
	// SlotCount is the number of generated slots (24 half hours).
	SlotCount = (WindowEndHour - WindowStartHour) * 60 / SlotMinutes
)

// Metrics holds the visual constants of the grid. Heights and offsets are
// expressed in whatever unit the renderer uses (rem, pixels, terminal rows);
// UnitHeight is the height of one half-hour row.
type Metrics struct {
	UnitHeight float64 // height of one 30-minute row
	Gap        float64 // separation subtracted from every session box
	MinHeight  float64 // floor for very short (or malformed) sessions
	CursorBase float64 // offset of the 08:00 row from the top of the view
}

// DefaultMetrics matches the proportions of the original web layout.
func DefaultMetrics() Metrics {
	return Metrics{
		UnitHeight: 7.0625,
		Gap:        1,
		MinHeight:  2.5,
		CursorBase: 13,
	}
}

// Slot is one half-hour boundary in the display window.
type Slot struct {
	Hour   int
	Minute int
}

// Label renders the slot as "HH:MM".
func (s Slot) Label() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

// Slots generates the fixed display slots, 08:00 through 19:30. Slots are
// generated, not derived from the data.
func Slots() []Slot {
	slots := make([]Slot, 0, SlotCount)
	for hour := WindowStartHour; hour < WindowEndHour; hour++ {
		slots = append(slots, Slot{Hour: hour}, Slot{Hour: hour, Minute: 30})
	}
	return slots
}

// SlotIndex returns the index of the slot whose half-hour window contains t,
// and whether t falls inside the display window at all.
func SlotIndex(t time.Time) (int, bool) {
	hour := t.Hour()
	if hour < WindowStartHour || hour >= WindowEndHour {
		return 0, false
	}
	return (hour-WindowStartHour)*2 + t.Minute()/SlotMinutes, true
}

// Placed is a session annotated with its position in the grid.
type Placed struct {
	Session  models.Session
	Start    time.Time
	End      time.Time
	Duration float64 // hours, fractional
	Offset   float64 // downward shift within the cell, fraction of one slot [0,1)
	Height   float64 // in Metrics units
	Short    bool    // duration <= half an hour, shown with a 30min badge
}

// Grid is the positioned timetable for one day.
type Grid struct {
	Slots     []Slot
	Locations []string // columns, first-seen order
	Skipped   []string // titles of sessions dropped for unparsable timestamps

	cells    [][][]Placed // [slot][column]
	colIndex map[string]int
}

// Build lays out the given sessions in the display timezone loc. It is a
// pure function of its inputs: no side effects, deterministic for a given
// session order. Sessions with unparsable timestamps are skipped and
// recorded in Grid.Skipped rather than crashing the layout.
func Build(sessions []models.Session, loc *time.Location, m Metrics) *Grid {
	if loc == nil {
		loc = time.Local
	}

	g := &Grid{
		Slots:    Slots(),
		colIndex: make(map[string]int),
	}

	// Column order is first-seen order of location across the whole input,
	// independent of whether the session lands in the window.
	for _, s := range sessions {
		if _, ok := g.colIndex[s.Location]; !ok {
			g.colIndex[s.Location] = len(g.Locations)
			g.Locations = append(g.Locations, s.Location)
		}
	}

	g.cells = make([][][]Placed, SlotCount)
	for i := range g.cells {
		g.cells[i] = make([][]Placed, len(g.Locations))
	}

	for _, s := range sessions {
		start, err := s.Start()
		if err != nil {
			g.Skipped = append(g.Skipped, s.Title)
			continue
		}
		end, err := s.End()
		if err != nil {
			g.Skipped = append(g.Skipped, s.Title)
			continue
		}

		start = start.In(loc)
		end = end.In(loc)

		slot, ok := SlotIndex(start)
		if !ok {
			// Outside the 08:00-20:00 window: a content issue, not a fault.
			continue
		}

		duration := end.Sub(start).Hours()
		col := g.colIndex[s.Location]
		g.cells[slot][col] = append(g.cells[slot][col], Placed{
			Session:  s,
			Start:    start,
			End:      end,
			Duration: duration,
			Offset:   float64(start.Minute()%SlotMinutes) / SlotMinutes,
			Height:   Height(duration, m),
			Short:    duration <= 0.5,
		})
	}

	// Sessions sharing a cell stack by ascending start time.
	for i := range g.cells {
		for j := range g.cells[i] {
			cell := g.cells[i][j]
			sort.SliceStable(cell, func(a, b int) bool {
				return cell[a].Start.Before(cell[b].Start)
			})
		}
	}

	return g
}

// Height computes the visual height of a session box: linear in duration at
// two units per hour, minus a small gap, floored at MinHeight. Negative or
// zero durations clamp to the floor.
func Height(durationHours float64, m Metrics) float64 {
	h := durationHours*2*m.UnitHeight - m.Gap
	if h < m.MinHeight {
		return m.MinHeight
	}
	return h
}

// At returns the sessions placed at the given slot index and location,
// stacked by ascending start time. Unknown locations yield nil.
func (g *Grid) At(slot int, location string) []Placed {
	if slot < 0 || slot >= len(g.cells) {
		return nil
	}
	col, ok := g.colIndex[location]
	if !ok {
		return nil
	}
	return g.cells[slot][col]
}

// AtColumn is At by column index, for renderers iterating Locations.
func (g *Grid) AtColumn(slot, col int) []Placed {
	if slot < 0 || slot >= len(g.cells) || col < 0 || col >= len(g.Locations) {
		return nil
	}
	return g.cells[slot][col]
}

// RowSpan returns how many half-hour rows a placed session covers, for
// renderers that draw one row per slot. Always at least one.
func RowSpan(p Placed) int {
	rows := int(math.Round(p.Duration * 2))
	if rows < 1 {
		return 1
	}
	return rows
}
