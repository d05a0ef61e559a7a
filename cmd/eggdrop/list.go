package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggdrop/internal/registry"
	"github.com/vovakirdan/eggdrop/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered Egg Drop mode with its best score and play count.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	stats := playedStats()

	fmt.Printf("  %-*s  %-24s  %-6s  %s\n", maxIDLen, "ID", "Title", "Best", "Games")
	fmt.Printf("  %-*s  %-24s  %-6s  %s\n", maxIDLen, "--", "-----", "----", "-----")
	for _, g := range games {
		best, played := "-", "0"
		if gs, ok := stats[g.ID]; ok {
			best, played = fmt.Sprint(gs.HighScore), fmt.Sprint(gs.GamesCount)
		}
		fmt.Printf("  %-*s  %-24s  %-6s  %s\n", maxIDLen, g.ID, g.Title, best, played)
	}

	fmt.Println()
	fmt.Println("Run 'eggdrop play <id>' to play a mode.")
}

// playedStats returns per-mode stats, or nil when the database is unavailable.
func playedStats() map[string]*storage.GameStats {
	e, err := loadEnv(false)
	if err != nil {
		return nil
	}
	defer e.Close()

	store := e.openStore()
	if store == nil {
		return nil
	}
	//nolint:errcheck // Best-effort close on exit
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		e.logger.Warn("could not read stats", "error", err)
		return nil
	}
	return stats
}
