// Package config reads display and logging settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when present; a missing file is not an error
const DefaultEnvFile = ".env"

// Environment variables
const (
	EnvMaxWidth   = "GOBEAM_MAX_WIDTH"
	EnvPxPerMeter = "GOBEAM_PX_PER_METER"
	EnvStations   = "GOBEAM_STATIONS"
	EnvLogLevel   = "GOBEAM_LOG_LEVEL"
	EnvAuthor     = "GOBEAM_AUTHOR"
)

// Config holds the runtime settings
type Config struct {
	MaxWidth   float64    // upper bound of the drawn beam (px)
	PxPerMeter float64    // drawing scale (px per m)
	Stations   int        // shear/moment sampling segments
	LogLevel   slog.Level // minimum log level
	Author     string     // printed on PDF reports
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		MaxWidth:   700,
		PxPerMeter: 100,
		Stations:   50,
		LogLevel:   slog.LevelWarn,
	}
}

// Load reads envFile (if any) into the process environment and builds a
// Config from it. An empty envFile tries DefaultEnvFile. Variables already
// set in the environment take precedence over the file.
func Load(envFile string) (Config, error) {
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv for lookups
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv(EnvMaxWidth); v != "" {
		f, err := positiveFloat(EnvMaxWidth, v)
		if err != nil {
			return Config{}, err
		}
		cfg.MaxWidth = f
	}
	if v := getenv(EnvPxPerMeter); v != "" {
		f, err := positiveFloat(EnvPxPerMeter, v)
		if err != nil {
			return Config{}, err
		}
		cfg.PxPerMeter = f
	}
	if v := getenv(EnvStations); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive integer, got %q", EnvStations, v)
		}
		cfg.Stations = n
	}
	if v := getenv(EnvLogLevel); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	cfg.Author = getenv(EnvAuthor)

	return cfg, nil
}

func positiveFloat(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || !(f > 0) {
		return 0, fmt.Errorf("%s must be a positive number, got %q", name, v)
	}
	return f, nil
}
