package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggdrop/internal/storage"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions [session-id]",
	Short: "Show recorded play sessions",
	Long: `List the most recent play sessions, local and over SSH, or show a
single session by its ID. Use --player to filter by player.

Examples:
  eggdrop sessions
  eggdrop sessions --player alice --limit 5
  eggdrop sessions 6f1c2a9e-...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSessions,
}

var flagLimit int

func init() {
	sessionsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 20, "Number of sessions to list")
}

func runSessions(_ *cobra.Command, args []string) {
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

	if len(args) == 1 {
		rec, err := store.SessionByID(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving session: %v\n", err)
			os.Exit(1)
		}
		if rec == nil {
			fmt.Fprintf(os.Stderr, "Error: no session %q\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Session:  %s\n", rec.SessionID)
		fmt.Printf("Mode:     %s\n", rec.GameID)
		fmt.Printf("Player:   %s\n", rec.Player)
		if rec.RemoteAddr != "" {
			fmt.Printf("Remote:   %s\n", rec.RemoteAddr)
		}
		fmt.Printf("Score:    %d\n", rec.Score)
		fmt.Printf("Ended by: %s after %ds\n", rec.EndReason, rec.Duration)
		fmt.Printf("Date:     %s\n", rec.CreatedAt.Format("2006-01-02 15:04"))
		return
	}

	recs, err := store.PlayerSessions(flagPlayer, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}
	if len(recs) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-16s  %-8s  %-10s  %-6s  %s\n", "Date", "Player", "Score", "Ended", "Secs", "Mode")
	fmt.Printf("  %-16s  %-16s  %-8s  %-10s  %-6s  %s\n", "----", "------", "-----", "-----", "----", "----")
	for _, r := range recs {
		player := r.Player
		if len(player) > 16 {
			player = player[:15] + "."
		}
		fmt.Printf("  %-16s  %-16s  %-8d  %-10s  %-6d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), player, r.Score, r.EndReason, r.Duration, r.GameID)
	}
}
