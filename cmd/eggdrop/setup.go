package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/eggdrop/internal/chest"
	"github.com/vovakirdan/eggdrop/internal/config"
	"github.com/vovakirdan/eggdrop/internal/core"
	"github.com/vovakirdan/eggdrop/internal/games/eggdrop"
	"github.com/vovakirdan/eggdrop/internal/storage"
)

const defaultDBPath = "~/.arcade/scores.db"

// env is the process environment: dotenv and EGGDROP_* variables with
// flags layered on top.
type env struct {
	server  config.ServerConfig
	logger  *log.Logger
	logFile *os.File
}

// loadEnv reads settings and builds the logger. Interactive commands
// discard logs unless --log-file is set so the alt screen stays clean.
func loadEnv(interactive bool) (*env, error) {
	srv, err := config.LoadServerConfig(flagEnvFile)
	if err != nil {
		return nil, err
	}

	e := &env{server: srv}

	var out io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, fmt.Errorf("open log file: %w", openErr)
		}
		e.logFile = f
		out = f
	case interactive:
		out = io.Discard
	}

	levelName := srv.LogLevel
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		level = log.InfoLevel
	}

	e.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return e, nil
}

// Close releases the log file, if any.
func (e *env) Close() {
	if e.logFile != nil {
		//nolint:errcheck // Best-effort close on exit
		e.logFile.Close()
	}
}

// dbPath picks the database: --db, then EGGDROP_DB, then the default.
func (e *env) dbPath() string {
	switch {
	case flagDBPath != "":
		return flagDBPath
	case e.server.DBPath != "":
		return e.server.DBPath
	default:
		return defaultDBPath
	}
}

// openStore opens the score database. Play continues without it.
func (e *env) openStore() *storage.Store {
	store, err := storage.Open(e.dbPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		e.logger.Warn("could not open scores database", "path", e.dbPath(), "error", err)
		return nil
	}
	return store
}

// chestResolver returns the remote resolver when EGGDROP_CHEST_URL is set
// and a local lottery otherwise.
func (e *env) chestResolver(seed int64) chest.Resolver {
	if e.server.ChestURL != "" {
		return chest.NewHTTPResolver(e.server.ChestURL, &http.Client{Timeout: e.server.ChestTimeout})
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return chest.NewLottery(seed)
}

// configureGame applies config, difficulty and chest wiring to every
// Egg Drop game created afterwards.
func (e *env) configureGame(store *storage.Store) {
	eggdrop.SetConfigPath(flagConfig)
	eggdrop.SetDifficultyPreset(flagDifficulty)
	eggdrop.SetLogger(e.logger)

	opts := []chest.Option{chest.WithTimeout(e.server.ChestTimeout)}
	if store != nil {
		opts = append(opts, chest.WithRecorder(store))
	}
	eggdrop.SetChestResolver(e.chestResolver(flagSeed), opts...)
}

// playerName picks the name saved with scores: --player, then $USER.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return core.DefaultConfig().PlayerID
}

// runtimeConfig builds the local runtime config from the terminal size
// and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil { //#nosec G115 -- file descriptors fit in int
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.PlayerID = playerName()
	return cfg
}
