// Package logging configures the process logger: timestamped text lines
// to stderr, mirrored into an append-only log file.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup builds a logger writing to stderr and, when path is non-empty,
// appending to the log file at path. A log file that cannot be opened
// degrades to stderr-only with a warning rather than failing the run.
func Setup(path string, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if path == "" {
		return log
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.WithError(err).Warnf("cannot open log file %s, logging to stderr only", path)
		return log
	}

	log.SetOutput(io.MultiWriter(os.Stderr, file))
	return log
}

// SetupQuiet builds a logger that only writes to the given writer,
// used by tests and by commands that must keep stdout clean.
func SetupQuiet(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	return log
}

// FilePath picks the log file path: flag wins over config, config over
// nothing. An unwritable directory is the caller's problem to surface.
func FilePath(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return ""
}
