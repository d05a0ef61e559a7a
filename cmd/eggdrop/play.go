package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggdrop/internal/platform/tui"
	"github.com/vovakirdan/eggdrop/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Left/Right, A/D, H/L  - Move the catcher
  Mouse drag            - Move the catcher to the pointer
  Space/Up/W            - Jump (hold to fly with the dragonfly)
  1/2/3                 - Skills (eggdrop_skills only)
  P                     - Pause
  R                     - Restart (after game over)
  Esc/B                 - Back (when paused or over)
  Q/Ctrl+C              - Quit
  Ctrl+S                - Save a screenshot

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  eggdrop play eggdrop
  eggdrop play eggdrop_skills --difficulty hard
  eggdrop play eggdrop --config ./my-eggdrop.yaml
  eggdrop play eggdrop --player alice --log-file eggdrop.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'eggdrop list' to see available modes.")
		os.Exit(1)
	}

	e, err := loadEnv(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := e.openStore()
	e.configureGame(store)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	e.logger.Info("starting game", "mode", gameID, "player", cfg.PlayerID, "seed", cfg.Seed)
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		//nolint:errcheck // Best-effort close on exit
		store.Close()
	}
	e.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
