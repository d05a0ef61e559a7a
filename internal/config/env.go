package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ServerConfig holds process-level settings that come from the environment
// rather than the per-game YAML.
type ServerConfig struct {
	SSHHost      string        `env:"EGGDROP_SSH_HOST" envDefault:"0.0.0.0"`
	SSHPort      int           `env:"EGGDROP_SSH_PORT" envDefault:"23234"`
	HostKeyPath  string        `env:"EGGDROP_HOST_KEY"`
	IdleTimeout  time.Duration `env:"EGGDROP_IDLE_TIMEOUT" envDefault:"30m"`
	DBPath       string        `env:"EGGDROP_DB"`
	ChestURL     string        `env:"EGGDROP_CHEST_URL"`
	ChestTimeout time.Duration `env:"EGGDROP_CHEST_TIMEOUT" envDefault:"3s"`
	LogLevel     string        `env:"EGGDROP_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// LoadServerConfig reads an optional dotenv file into the process
// environment and then parses ServerConfig from it.
// A missing dotenv file is not an error; variables already set win.
func LoadServerConfig(dotenvPath string) (ServerConfig, error) {
	var cfg ServerConfig
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config: load %s: %w", dotenvPath, err)
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Addr returns the SSH listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.SSHHost, c.SSHPort)
}
