package cli

import (
	"fmt"
	"path/filepath"

	"github.com/knoba/confgrid/internal/core/config"
	"github.com/knoba/confgrid/internal/core/schedule"
	"github.com/knoba/confgrid/internal/core/timetable"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show paths and data statistics",
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	loc := cfg.Location()

	fmt.Printf("Config dir:  %s\n", config.Dir())
	fmt.Printf("Config file: %s\n", filepath.Join(config.Dir(), "config.toml"))
	fmt.Printf("Database:    %s\n", cfg.DBPath)
	if cfg.TagsPath != "" {
		fmt.Printf("Tag table:   %s\n", cfg.TagsPath)
	} else {
		fmt.Printf("Tag table:   (embedded default)\n")
	}
	fmt.Printf("Timezone:    %s\n", loc)
	fmt.Println()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	for _, day := range schedule.Days() {
		sessions := schedule.Load(day)
		grid := timetable.Build(sessions, loc, timetable.DefaultMetrics())
		favs := store.Load(day)
		fmt.Printf("%s: %d sessions, %d locations, %d favorites", day, len(sessions), len(grid.Locations), len(favs))
		if n := len(grid.Skipped); n > 0 {
			fmt.Printf(", %d skipped (bad timestamps)", n)
		}
		fmt.Println()
	}
	return nil
}
