// eggdrop is a terminal egg-catching arcade game, playable locally or over SSH.
//
// Usage:
//
//	eggdrop list              - List available modes
//	eggdrop play <mode>       - Play a mode
//	eggdrop menu              - Start menu to pick modes interactively
//	eggdrop serve             - Start SSH server for remote play
//	eggdrop scores [mode]     - Show high scores and chest tally
//	eggdrop simulate          - Run autopilot sessions headlessly
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--player <name>       - Name saved with scores and sent to the chest service
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file instead of discarding them
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--env-file <path>     - Optional dotenv file with EGGDROP_* settings
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/eggdrop/internal/games/eggdrop"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagPlayer     string
	flagLogLevel   string
	flagLogFile    string
	flagConfig     string
	flagDifficulty string
	flagEnvFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eggdrop",
	Short: "Egg Drop - catch falling eggs in your terminal",
	Long: `Egg Drop is a terminal arcade game: move the catcher, catch eggs,
dodge bombs and rotten eggs, and open chests for pets.

Available commands:
  list      - Show all available modes
  play      - Play a specific mode directly
  menu      - Interactive mode picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run autopilot sessions without a terminal

Examples:
  eggdrop list
  eggdrop play eggdrop
  eggdrop play eggdrop_skills --difficulty hard
  eggdrop menu
  eggdrop serve --ssh :2222
  eggdrop scores eggdrop
  eggdrop simulate --runs 50`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.arcade/scores.db or $EGGDROP_DB)")
	pf.StringVar(&flagPlayer, "player", "", "Player name (default $USER)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default $EGGDROP_LOG_LEVEL or info)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagEnvFile, "env-file", ".env", "Optional dotenv file with EGGDROP_* settings")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(configCmd)
}
