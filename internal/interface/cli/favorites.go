package cli

import (
	"fmt"

	"github.com/knoba/confgrid/internal/core/schedule"
	"github.com/spf13/cobra"
)

var favoritesDay string

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Show favorited sessions",
	Long: `Show the favorited session titles saved for a day.

Favorites are kept independently per day; use --day to pick one.

Examples:
  confgrid favorites
  confgrid favorites --day day3
  confgrid favorites clear --day day3`,
	RunE: runFavorites,
}

var favoritesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the favorites saved for a day",
	RunE:  runFavoritesClear,
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.AddCommand(favoritesClearCmd)
	favoritesCmd.PersistentFlags().StringVar(&favoritesDay, "day", schedule.DefaultDay, "Day (day1..day4)")
}

func runFavorites(cmd *cobra.Command, args []string) error {
	day, err := resolveDay(favoritesDay)
	if err != nil {
		return err
	}

	store, err := openStore(loadConfig())
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	favs := store.Load(day)
	if len(favs) == 0 {
		fmt.Printf("No favorites saved for %s.\n", day)
		return nil
	}

	fmt.Printf("Favorites for %s:\n", day)
	for _, title := range favs {
		fmt.Printf("  ★ %s\n", title)
	}
	return nil
}

func runFavoritesClear(cmd *cobra.Command, args []string) error {
	day, err := resolveDay(favoritesDay)
	if err != nil {
		return err
	}

	store, err := openStore(loadConfig())
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	if err := store.Clear(day); err != nil {
		return err
	}
	fmt.Printf("Cleared favorites for %s.\n", day)
	return nil
}
