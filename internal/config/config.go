// Package config loads command settings from THERMO_* environment variables
// and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds the builder settings.
type Config struct {
	Input  string `env:"THERMO_INPUT" envDefault:"Themodynamic and Transport Properties.xlsm"` // source workbook
	Output string `env:"THERMO_OUTPUT" envDefault:"data/thermo_tables.json"`                   // document path
	Format string `env:"THERMO_FORMAT"`                                                        // json|yaml|sqlite, empty = by extension
	Pretty bool   `env:"THERMO_PRETTY" envDefault:"true"`                                      // indent JSON output
	Log    LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `env:"THERMO_LOG_LEVEL" envDefault:"info"`  // debug|info|warn|error
	Format     string `env:"THERMO_LOG_FORMAT" envDefault:"text"` // text|json
	File       string `env:"THERMO_LOG_FILE"`                     // rotated log file, empty = stderr only
	MaxSize    int    `env:"THERMO_LOG_MAX_SIZE" envDefault:"10"` // megabytes
	MaxBackups int    `env:"THERMO_LOG_MAX_BACKUPS" envDefault:"3"`
	MaxAge     int    `env:"THERMO_LOG_MAX_AGE" envDefault:"28"` // days
}

// Load parses the environment.
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("can't read config: %w", err)
	}
	return cfg, nil
}

// LoadFrom loads envfile into the environment, when it exists, then parses it.
// Values in the file override the current environment.
func LoadFrom(envfile string) (Config, error) {
	if envfile == "" {
		return Load()
	}

	file, err := filepath.Abs(envfile)
	if err != nil {
		return Load()
	}
	if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
		return Load()
	}

	if err := godotenv.Overload(file); err != nil {
		return Config{}, fmt.Errorf("can't read %s: %w", envfile, err)
	}
	return Load()
}
