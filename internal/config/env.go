package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the runtime settings of the CLI that may come from the environment.
// Command-line flags take precedence over these values.
type Settings struct {
	FPS        int    `env:"HOMEBOUND_FPS" envDefault:"60"`
	Seed       int64  `env:"HOMEBOUND_SEED" envDefault:"0"`
	DBPath     string `env:"HOMEBOUND_DB" envDefault:"~/.homebound/runs.db"`
	ConfigPath string `env:"HOMEBOUND_CONFIG"`
	Difficulty string `env:"HOMEBOUND_DIFFICULTY" envDefault:"normal"`
	LogFile    string `env:"HOMEBOUND_LOG_FILE"`
	LogLevel   string `env:"HOMEBOUND_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
