package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvlrand/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := logging.Setup("warn", &buf, "")
	require.NoError(t, err)
	defer closer()

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetup_BadLevel(t *testing.T) {
	_, _, err := logging.Setup("loud", &bytes.Buffer{}, "")
	assert.Error(t, err)
}

func TestSetup_TeeToFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "lvlrand.log")

	logger, closer, err := logging.Setup("info", &buf, path)
	require.NoError(t, err)
	logger.Info("both")
	require.NoError(t, closer())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "both")
	assert.Contains(t, buf.String(), "both")
}

func TestRunEntry_Fields(t *testing.T) {
	logger, _, err := logging.Setup("info", &bytes.Buffer{}, "")
	require.NoError(t, err)

	e := logging.RunEntry(logger, "sequence", 8008)
	assert.Equal(t, "sequence", e.Data["mode"])
	assert.Equal(t, uint32(8008), e.Data["seed"])

	id, ok := e.Data["run_id"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	other := logging.RunEntry(logger, "sequence", 8008)
	assert.NotEqual(t, id, other.Data["run_id"])
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
