package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggdrop/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Egg Drop SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a mode picker menu. The SSH
user name is the player name. Scores are stored per server, so everyone
shares the same leaderboard.

Settings come from EGGDROP_* environment variables (or --env-file);
flags given on the command line win.

  EGGDROP_SSH_HOST, EGGDROP_SSH_PORT  listen address
  EGGDROP_HOST_KEY                    host key path
  EGGDROP_IDLE_TIMEOUT                idle disconnect (e.g. 30m)
  EGGDROP_DB                          scores database
  EGGDROP_CHEST_URL                   remote chest lottery endpoint
  EGGDROP_CHEST_TIMEOUT               chest request timeout (e.g. 3s)
  EGGDROP_LOG_LEVEL                   debug, info, warn, error

Examples:
  eggdrop serve                           # Listen on 0.0.0.0:23234
  eggdrop serve --ssh :2222               # Listen on port 2222
  eggdrop serve --host-key ./my_host_key  # Use specific host key
  eggdrop serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (default from EGGDROP_SSH_HOST/PORT)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from EGGDROP_HOST_KEY)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from EGGDROP_IDLE_TIMEOUT)")
}

func runServe(cmd *cobra.Command, _ []string) {
	e, err := loadEnv(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer e.Close()

	store := e.openStore()
	e.configureGame(store)

	cfg := tui.DefaultSSHServerConfig()
	cfg.DBPath = e.dbPath()
	cfg.Store = store
	cfg.Logger = e.logger
	if addr := e.server.Addr(); addr != "" {
		cfg.Address = addr
	}
	if e.server.HostKeyPath != "" {
		cfg.HostKeyPath = e.server.HostKeyPath
	}
	if e.server.IdleTimeout > 0 {
		cfg.IdleTimeout = e.server.IdleTimeout
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if cmd.Flags().Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Egg Drop SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe()
	if store != nil {
		//nolint:errcheck // Best-effort close on exit
		store.Close()
	}
	if serveErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", serveErr)
		os.Exit(1)
	}
}
