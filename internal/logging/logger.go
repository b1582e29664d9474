// Package logging builds the logrus loggers used across the service.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger represents a logger instance
type Logger = *logrus.Logger

// Fields represents structured logging fields
type Fields = logrus.Fields

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// New creates a logger at level ("debug", "info", ...) writing in format.
// Unknown levels fall back to info and unknown formats to JSON.
func New(level, format string) *logrus.Logger {
	logger := logrus.New()
	if strings.EqualFold(format, FormatText) {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// WithService tags every entry written through logger with a service field.
func WithService(logger *logrus.Logger, serviceName string) *logrus.Logger {
	logger.AddHook(serviceHook(serviceName))
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type serviceHook string

func (h serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h serviceHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["service"]; !ok {
		entry.Data["service"] = string(h)
	}
	return nil
}
