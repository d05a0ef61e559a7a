package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggdrop/internal/chest"
	"github.com/vovakirdan/eggdrop/internal/registry"
	"github.com/vovakirdan/eggdrop/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a mode (default: every mode),
followed by the chest reward tally.

With --player only that player's best runs are listed. --reset deletes
every score of the given mode.

Examples:
  eggdrop scores
  eggdrop scores eggdrop_skills
  eggdrop scores --player alice
  eggdrop scores eggdrop --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var flagReset bool

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all scores of the given mode")
}

func runScores(_ *cobra.Command, args []string) {
	games := registry.List()
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'eggdrop list' to see available modes.")
			os.Exit(1)
		}
		games = slices.DeleteFunc(games, func(g registry.GameInfo) bool {
			return g.ID != args[0]
		})
	}

	e, err := loadEnv(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer e.Close()

	store, err := storage.Open(e.dbPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Best-effort close on exit
	defer store.Close()

	if flagReset {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --reset needs a mode")
			os.Exit(1)
		}
		if err := store.ClearScores(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scores for %s cleared.\n", args[0])
		return
	}

	for i, g := range games {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, g); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			return
		}
	}

	fmt.Println()
	printChestTally(store, flagPlayer)
}

func printScores(store *storage.Store, g registry.GameInfo) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if flagPlayer != "" {
		scores, err = store.PlayerScores(g.ID, flagPlayer, 10)
		fmt.Printf("Best Runs - %s (%s)\n", g.Title, flagPlayer)
	} else {
		scores, err = store.TopScores(g.ID, 10)
		fmt.Printf("High Scores - %s\n", g.Title)
	}
	if err != nil {
		return err
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'eggdrop play %s' to set the first high score!\n", g.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Golden", "Bombs", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %-5s  %s\n", "----", "------", "-----", "------", "-----", "----")
	for i, entry := range scores {
		player := entry.Player
		if len(player) > 16 {
			player = player[:15] + "."
		}
		fmt.Printf("  %-4d  %-16s  %-8d  %-6d  %-5d  %s\n",
			i+1, player, entry.Score, entry.Stats.GoldenEggs, entry.Stats.BombsHit,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(g.ID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printChestTally(store *storage.Store, player string) {
	tally, err := store.ChestTally(player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving chests: %v\n", err)
		return
	}

	total := 0
	for _, n := range tally {
		total += n
	}
	if total == 0 {
		fmt.Println("Chests opened: 0")
		return
	}
	fmt.Printf("Chests opened: %d  kitsune: %d  dragonfly: %d  empty: %d\n",
		total, tally[string(chest.RewardKitsune)], tally[string(chest.RewardDragonfly)], tally[chest.RewardNone.String()])
}
