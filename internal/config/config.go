// Package config loads the lvlrand command configuration from YAML with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"
)

// Environment variables that override file values.
const (
	EnvSeed     = "LVLRAND_SEED"
	EnvLogLevel = "LVLRAND_LOG_LEVEL"
)

// ErrInvalidConfig indicates a configuration value that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full lvlrand command configuration.
type Config struct {
	Seed     uint32   `yaml:"seed"`
	LogLevel string   `yaml:"log_level"`
	LogFile  string   `yaml:"log_file,omitempty"`
	Sequence Sequence `yaml:"sequence"`
	Stats    Stats    `yaml:"stats"`
	Solve    Solve    `yaml:"solve"`
}

// Sequence configures the "sequence" mode: Draws values of Range(Min, Max).
type Sequence struct {
	Min   int `yaml:"min"`
	Max   int `yaml:"max"`
	Draws int `yaml:"draws"`
}

// Stats configures the "stats" mode diagnostics.
type Stats struct {
	Min          int `yaml:"min"`
	Max          int `yaml:"max"`
	Draws        int `yaml:"draws"`
	LowBits      int `yaml:"low_bits"`
	ShuffleLen   int `yaml:"shuffle_len"`
	ShuffleTries int `yaml:"shuffle_trials"`
}

// Solve configures the "solve" mode instance and solvers.
type Solve struct {
	Cities      int `yaml:"cities"`
	Side        int `yaml:"side"`
	Restarts    int `yaml:"restarts"`
	Workers     int `yaml:"workers"`
	Population  int `yaml:"population"`
	Generations int `yaml:"generations"`
}

// Default returns the built-in configuration. Its sequence section
// reproduces five draws of Range(10, 20) from seed 8008.
func Default() *Config {
	return &Config{
		Seed:     8008,
		LogLevel: "info",
		Sequence: Sequence{Min: 10, Max: 20, Draws: 5},
		Stats: Stats{
			Min: 1, Max: 6, Draws: 60000,
			LowBits: 4, ShuffleLen: 5, ShuffleTries: 20000,
		},
		Solve: Solve{
			Cities: 40, Side: 1000,
			Restarts: 8, Workers: 4,
			Population: 25, Generations: 200,
		},
	}
}

// Load reads the YAML file at path on top of Default. A leading "~" is
// expanded to the user's home folder. An empty path returns Default.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("%s: %w", expanded, err)
	}
	return c, nil
}

// ApplyEnv loads envFile (if present) into the process environment and
// applies LVLRAND_SEED and LVLRAND_LOG_LEVEL. Variables already set in the
// environment win over the file.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalidConfig)
		}
		c.Seed = uint32(seed)
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks the values every mode relies on.
func (c *Config) Validate() error {
	switch {
	case c.Sequence.Max < c.Sequence.Min:
		return fmt.Errorf("sequence: max %d < min %d: %w", c.Sequence.Max, c.Sequence.Min, ErrInvalidConfig)
	case c.Sequence.Draws < 0:
		return fmt.Errorf("sequence: draws %d: %w", c.Sequence.Draws, ErrInvalidConfig)
	case c.Stats.Max <= c.Stats.Min:
		return fmt.Errorf("stats: need at least two buckets: %w", ErrInvalidConfig)
	case c.Stats.Draws <= 0 || c.Stats.ShuffleTries <= 0:
		return fmt.Errorf("stats: draws must be positive: %w", ErrInvalidConfig)
	case c.Stats.LowBits < 1 || c.Stats.LowBits > 16:
		return fmt.Errorf("stats: low_bits %d: %w", c.Stats.LowBits, ErrInvalidConfig)
	case c.Stats.ShuffleLen < 2:
		return fmt.Errorf("stats: shuffle_len %d: %w", c.Stats.ShuffleLen, ErrInvalidConfig)
	case c.Solve.Cities < 3:
		return fmt.Errorf("solve: cities %d: %w", c.Solve.Cities, ErrInvalidConfig)
	case c.Solve.Side < 1:
		return fmt.Errorf("solve: side %d: %w", c.Solve.Side, ErrInvalidConfig)
	case c.Solve.Restarts < 1 || c.Solve.Workers < 1:
		return fmt.Errorf("solve: restarts and workers must be positive: %w", ErrInvalidConfig)
	case c.Solve.Population < 2 || c.Solve.Generations < 0:
		return fmt.Errorf("solve: population %d generations %d: %w", c.Solve.Population, c.Solve.Generations, ErrInvalidConfig)
	}
	return nil
}
