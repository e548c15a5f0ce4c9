// Package config loads runtime settings for the cinema CLI.
//
// Settings come from environment variables, optionally seeded from a .env
// file in the working directory. Variables already set in the environment
// take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel  = "CINEMA_LOG_LEVEL"
	EnvLogFormat = "CINEMA_LOG_FORMAT"
	EnvLogOutput = "CINEMA_LOG_OUTPUT"
	EnvNoColor   = "CINEMA_NO_COLOR"
)

// Defaults.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
	DefaultLogOutput = "stderr"
)

// Logging configures the zap logger.
type Logging struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is "console" or "json"
	Format string

	// Output is a zap output path: stdout, stderr or a file path
	Output string
}

// Config contains all runtime settings.
type Config struct {
	Logging Logging

	// NoColor disables coloured terminal output
	NoColor bool
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: Logging{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			Output: DefaultLogOutput,
		},
	}
}

// Load reads the optional .env file in the current directory and then the
// environment.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is like Load but reads the dotenv file at path. A missing file
// is not an error.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables over the defaults.
func FromEnv() (*Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvLogOutput); v != "" {
		cfg.Logging.Output = v
	}
	if v := os.Getenv(EnvNoColor); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvNoColor, v, err)
		}
		cfg.NoColor = noColor
	}

	return cfg, nil
}
