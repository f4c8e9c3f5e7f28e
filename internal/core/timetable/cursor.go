package timetable

import "time"

// Cursor computes the vertical offset of the "now" line. The second return
// is false when now is outside the 08:00-20:00 window; callers should hide
// the cursor instead of drawing it at the top.
func Cursor(now time.Time, m Metrics) (float64, bool) {
	hour := now.Hour()
	if hour < WindowStartHour || hour >= WindowEndHour {
		return 0, false
	}
	elapsed := float64(hour-WindowStartHour) + float64(now.Minute())/60
	return m.CursorBase + elapsed*2*m.UnitHeight, true
}
