// Package logging configures the logrus logger used by the lvlrand command.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
)

// Setup builds a text logger at level writing to out, and additionally to
// the file at logFile when it is not empty. The returned closer releases the
// file and is never nil.
func Setup(level string, out io.Writer, logFile string) (*logrus.Logger, func() error, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(lvl)

	if logFile == "" {
		logger.SetOutput(out)
		return logger, func() error { return nil }, nil
	}

	path, err := homedir.Expand(logFile)
	if err != nil {
		return nil, nil, err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(io.MultiWriter(f, out))

	return logger, f.Close, nil
}

// RunEntry tags every line of one command run with a fresh run_id and the
// seed in use.
func RunEntry(logger *logrus.Logger, mode string, seed uint32) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"mode":   mode,
		"seed":   seed,
	})
}
