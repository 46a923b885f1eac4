package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvlrand/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, uint32(8008), c.Seed)
	assert.Equal(t, config.Sequence{Min: 10, Max: 20, Draws: 5}, c.Sequence)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvlrand.yaml")
	data := []byte("seed: 42\nlog_level: debug\nsequence:\n  min: 1\n  max: 6\n  draws: 3\nsolve:\n  cities: 12\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), c.Seed)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, config.Sequence{Min: 1, Max: 6, Draws: 3}, c.Sequence)
	assert.Equal(t, 12, c.Solve.Cities)
	// Untouched keys keep their defaults.
	assert.Equal(t, config.Default().Solve.Restarts, c.Solve.Restarts)
	assert.Equal(t, config.Default().Stats, c.Stats)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: [1, 2\n"), 0o600))
	_, err = config.Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(config.EnvSeed, " 123 ")
	t.Setenv(config.EnvLogLevel, "warn")

	c := config.Default()
	require.NoError(t, c.ApplyEnv(""))
	assert.Equal(t, uint32(123), c.Seed)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestApplyEnv_BadSeed(t *testing.T) {
	t.Setenv(config.EnvSeed, "4294967296")
	c := config.Default()
	assert.ErrorIs(t, c.ApplyEnv(""), config.ErrInvalidConfig)
}

func TestApplyEnv_DotEnvFile(t *testing.T) {
	// Registers cleanup that restores the variable; then unset it so the
	// file value is the one applied.
	t.Setenv(config.EnvSeed, "")
	require.NoError(t, os.Unsetenv(config.EnvSeed))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(config.EnvSeed+"=77\n"), 0o600))

	c := config.Default()
	require.NoError(t, c.ApplyEnv(path))
	assert.Equal(t, uint32(77), c.Seed)

	// A missing .env file is not an error.
	require.NoError(t, c.ApplyEnv(filepath.Join(t.TempDir(), "none.env")))
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"sequence inverted":  func(c *config.Config) { c.Sequence.Min, c.Sequence.Max = 5, 1 },
		"negative draws":     func(c *config.Config) { c.Sequence.Draws = -1 },
		"single stat bucket": func(c *config.Config) { c.Stats.Max = c.Stats.Min },
		"low bits":           func(c *config.Config) { c.Stats.LowBits = 17 },
		"shuffle len":        func(c *config.Config) { c.Stats.ShuffleLen = 1 },
		"few cities":         func(c *config.Config) { c.Solve.Cities = 2 },
		"zero side":          func(c *config.Config) { c.Solve.Side = 0 },
		"zero workers":       func(c *config.Config) { c.Solve.Workers = 0 },
		"tiny population":    func(c *config.Config) { c.Solve.Population = 1 },
	}
	for name, mut := range cases {
		t.Run(name, func(t *testing.T) {
			c := config.Default()
			mut(c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}
