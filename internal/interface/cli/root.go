package cli

import (
	"fmt"
	"os"

	"github.com/knoba/confgrid/internal/core/config"
	"github.com/knoba/confgrid/internal/core/favorites"
	"github.com/knoba/confgrid/internal/core/schedule"
	"github.com/knoba/confgrid/internal/core/tags"
	"github.com/spf13/cobra"
)

var (
	dbPath      string
	timezone    string
	versionInfo string
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "confgrid",
	Short: "Conference timetable browser",
	Long: `confgrid - browse the conference schedule as a time-by-location grid

A terminal timetable for the four conference days, with per-day favorites,
a live current-time marker, and iCalendar/markdown export.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to TUI if no subcommand specified
		return tuiCmd.RunE(cmd, args)
	},
}

func init() {
	cfg, _ := config.Load()

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "Favorites database path")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", cfg.Timezone, "Display timezone (IANA name)")
}

// loadConfig merges the config file with the persistent flag overrides.
func loadConfig() *config.Config {
	cfg, _ := config.Load()
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if timezone != "" {
		cfg.Timezone = timezone
	}
	return cfg
}

// openStore opens the favorites database for the merged config.
func openStore(cfg *config.Config) (*favorites.Store, error) {
	store, err := favorites.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open favorites store: %w", err)
	}
	return store, nil
}

// loadTagTable returns the configured tag table, falling back to the
// embedded default when no override is present or it fails to parse.
func loadTagTable(cfg *config.Config) tags.Table {
	if cfg.TagsPath != "" {
		if table, err := tags.LoadFile(cfg.TagsPath); err == nil {
			return table
		}
		fmt.Fprintf(os.Stderr, "warning: ignoring unreadable tag table %s\n", cfg.TagsPath)
	}
	return tags.Default()
}

// resolveDay validates a --day flag value.
func resolveDay(day string) (string, error) {
	if day == "" {
		return schedule.DefaultDay, nil
	}
	if !schedule.IsDay(day) {
		return "", fmt.Errorf("unknown day %q (expected day1..day4)", day)
	}
	return day, nil
}
