package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/knoba/confgrid/internal/core/favorites"
	"github.com/knoba/confgrid/internal/core/models"
	"github.com/knoba/confgrid/internal/core/schedule"
	"github.com/knoba/confgrid/internal/core/tags"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/spf13/cobra"
)

var (
	listDay string
	listAt  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's sessions",
	Long: `List the sessions of one conference day in feed order.

Favorited sessions are marked with a star. With --at, only sessions
running at the given moment are shown; the moment may be written in
natural language.

Examples:
  confgrid list
  confgrid list --day day2
  confgrid list --day day2 --at "10:30"
  confgrid list --at "tomorrow at 3pm"`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listDay, "day", schedule.DefaultDay, "Day to list (day1..day4)")
	listCmd.Flags().StringVar(&listAt, "at", "", "Only sessions running at this time")
}

func runList(cmd *cobra.Command, args []string) error {
	day, err := resolveDay(listDay)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	loc := cfg.Location()
	table := loadTagTable(cfg)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()
	favs := store.Load(day)

	sessions := schedule.Load(day)

	var at time.Time
	if listAt != "" {
		at, err = parseNaturalTime(listAt, day, loc)
		if err != nil {
			return err
		}
		fmt.Printf("Sessions on %s running at %s:\n\n", day, at.Format("2006-01-02 15:04"))
	} else {
		fmt.Printf("Sessions on %s:\n\n", day)
	}

	now := time.Now().In(loc)
	shown := 0
	for _, s := range sessions {
		start, err := s.Start()
		if err != nil {
			fmt.Printf("  ! %s (unparsable start time %q)\n", s.Title, s.StartTime)
			continue
		}
		end, endErr := s.End()
		if endErr != nil {
			fmt.Printf("  ! %s (unparsable end time %q)\n", s.Title, s.EndTime)
			continue
		}
		start, end = start.In(loc), end.In(loc)

		if listAt != "" && (at.Before(start) || !at.Before(end)) {
			continue
		}
		shown++

		marker := " "
		if favorites.Contains(favs, s.Title) {
			marker = "★"
		}

		fmt.Printf("%s %s - %s  %s\n", marker, start.Format("15:04"), end.Format("15:04"), s.Title)
		var meta []string
		if s.Type != "" {
			meta = append(meta, s.Type)
		}
		meta = append(meta, s.Location)
		if s.Speakers != "" {
			meta = append(meta, s.Speakers)
		}
		fmt.Printf("    %s\n", strings.Join(meta, " | "))
		if badges := badgeLabels(table, s); badges != "" {
			fmt.Printf("    [%s]\n", badges)
		}
		// Relative time is only meaningful near the event itself.
		if d := start.Sub(now); d > -24*time.Hour && d < 24*time.Hour {
			fmt.Printf("    starts %s\n", humanize.Time(start))
		}
		fmt.Println()
	}

	if shown == 0 {
		if listAt != "" {
			fmt.Println("Nothing is running at that time.")
		} else {
			fmt.Println("No sessions found.")
		}
	}
	return nil
}

func badgeLabels(table tags.Table, s models.Session) string {
	labels := make([]string, 0, len(s.Tags))
	for _, t := range s.Tags {
		labels = append(labels, table.Resolve(t).Label)
	}
	return strings.Join(labels, ", ")
}

// parseNaturalTime accepts "15:04", a date-time, or natural language
// ("tomorrow at 3pm"). Plain clock times resolve on the listed day's date
// so --at "10:30" works against the bundled data.
func parseNaturalTime(text, day string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation("15:04", text, loc); err == nil {
		first, ferr := firstSessionStart(day, loc)
		if ferr == nil {
			return time.Date(first.Year(), first.Month(), first.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
		}
		now := time.Now().In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", text, loc); err == nil {
		return t, nil
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	r, err := w.Parse(text, time.Now().In(loc))
	if err != nil || r == nil {
		return time.Time{}, fmt.Errorf("could not understand time %q", text)
	}
	return r.Time.In(loc), nil
}

func firstSessionStart(day string, loc *time.Location) (time.Time, error) {
	for _, s := range schedule.Load(day) {
		if t, err := s.Start(); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("no parsable sessions on %s", day)
}
