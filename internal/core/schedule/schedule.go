// Package schedule bundles the static per-day session data. The data is
// loaded wholesale from embedded JSON; a file that fails to decode yields
// an empty list rather than an error.
package schedule

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/knoba/confgrid/internal/core/models"
)

//go:embed data/*.json
var dataFS embed.FS

// DefaultDay is the day shown on startup.
const DefaultDay = "day1"

var days = []string{"day1", "day2", "day3", "day4"}

// Days returns the enumerated day identifiers in conference order.
func Days() []string {
	out := make([]string, len(days))
	copy(out, days)
	return out
}

// IsDay reports whether day is one of the enumerated identifiers.
func IsDay(day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

// Load returns the session list for a day, in feed order. Unknown days and
// decode failures return an empty list.
func Load(day string) []models.Session {
	if !IsDay(day) {
		return []models.Session{}
	}
	data, err := dataFS.ReadFile(fmt.Sprintf("data/%s.json", day))
	if err != nil {
		return []models.Session{}
	}

	var sessions []models.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return []models.Session{}
	}
	return sessions
}
