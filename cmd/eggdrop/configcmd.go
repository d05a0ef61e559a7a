package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/eggdrop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the effective game configuration as YAML, after the --config
file and --difficulty preset are applied. With --defaults the built-in
configuration is printed instead, ready to be saved and edited.

Examples:
  eggdrop config --defaults > ~/.arcade/configs/eggdrop.yaml
  eggdrop config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.GetDefaultYAML("eggdrop")) //nolint:errcheck // Best-effort write to stdout
		return
	}

	cfg, err := config.LoadEggdrop(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyEggdropPreset(&cfg, config.ParsePreset(flagDifficulty))
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out) //nolint:errcheck // Best-effort write to stdout
}
