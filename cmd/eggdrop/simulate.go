package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggdrop/internal/config"
	"github.com/vovakirdan/eggdrop/internal/games/eggdrop"
)

var (
	flagRuns     int
	flagParallel int
	flagMaxTime  time.Duration
	flagSkills   bool
	flagVerbose  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run autopilot sessions without a terminal",
	Long: `Play a batch of seeded sessions with the built-in autopilot and print
a summary. Useful for tuning a config file or a difficulty preset and for
checking that a seed replays identically.

Runs use consecutive seeds starting at --seed (1 when unset). Chests are
drawn from a lottery seeded per run unless EGGDROP_CHEST_URL is set.

Examples:
  eggdrop simulate
  eggdrop simulate --runs 200 --parallel 8
  eggdrop simulate --difficulty hard --skills
  eggdrop simulate --config ./my-eggdrop.yaml --max-time 5m -v`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 20, "Number of sessions")
	simulateCmd.Flags().IntVar(&flagParallel, "parallel", runtime.NumCPU(), "Sessions run at once")
	simulateCmd.Flags().DurationVar(&flagMaxTime, "max-time", 10*time.Minute, "Game time limit per session")
	simulateCmd.Flags().BoolVar(&flagSkills, "skills", false, "Fire skills whenever they are ready")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print every session")
}

func runSimulate(_ *cobra.Command, _ []string) {
	e, err := loadEnv(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer e.Close()
	logger := e.logger.WithPrefix("simulate")

	cfg, err := config.LoadEggdrop(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyEggdropPreset(&cfg, config.ParsePreset(flagDifficulty))

	fps := max(flagFPS, 1)
	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	base := eggdrop.HeadlessOptions{
		Config:   cfg,
		Seed:     seed,
		PlayerID: playerName(),
		Skills:   flagSkills,
		MaxTicks: int(flagMaxTime.Seconds() * float64(fps)),
		Dt:       1 / float64(fps),
	}
	if e.server.ChestURL != "" {
		base.Resolver = e.chestResolver(seed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("running", "runs", flagRuns, "parallel", flagParallel, "seed", seed, "difficulty", flagDifficulty)
	start := time.Now()
	results, err := eggdrop.Simulate(ctx, base, flagRuns, flagParallel)
	if err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
	logger.Info("done", "elapsed", time.Since(start).Round(time.Millisecond))

	printSimulation(results)
}

func printSimulation(results []eggdrop.HeadlessResult) {
	if len(results) == 0 {
		fmt.Println("No sessions run.")
		return
	}

	if flagVerbose {
		fmt.Printf("  %-8s  %-7s  %-8s  %-6s  %-5s  %-6s  %-6s  %-9s  %s\n",
			"Seed", "Score", "Time", "Golden", "Bombs", "Rotten", "Chests", "Pet", "Hash")
		for _, r := range results {
			fmt.Printf("  %-8d  %-7d  %-8s  %-6d  %-5d  %-6d  %-6d  %-9s  %016x\n",
				r.Seed, r.Score, time.Duration(r.Seconds*float64(time.Second)).Round(time.Second),
				r.Stats.GoldenEggs, r.Stats.BombsHit, r.Stats.RottenHit, r.Chests, r.Pet, r.Hash)
		}
		fmt.Println()
	}

	scores := make([]int, len(results))
	total, survived := 0, 0
	var seconds float64
	for i, r := range results {
		scores[i] = r.Score
		total += r.Score
		seconds += r.Seconds
		if !r.GameOver {
			survived++
		}
	}
	slices.Sort(scores)

	n := len(results)
	fmt.Printf("Sessions: %d  Survived time limit: %d\n", n, survived)
	fmt.Printf("Score  min %d  median %d  mean %.1f  max %d\n",
		scores[0], scores[n/2], float64(total)/float64(n), scores[n-1])
	fmt.Printf("Average session: %s\n", time.Duration(seconds/float64(n)*float64(time.Second)).Round(time.Second))
}
