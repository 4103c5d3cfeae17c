package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Field names shared by every component
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldID        = "id"
	FieldPath      = "path"
	FieldCount     = "count"
)

// SetupLogging builds a text logger writing to out at the given level.
// Diagnostics go to stderr in the CLI so stdout only carries reports.
func SetupLogging(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := &logrus.Logger{
		Formatter: &logrus.TextFormatter{
			DisableTimestamp: true,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Hooks: make(logrus.LevelHooks),
		Out:   out,
		Level: lvl,
	}

	return logger, nil
}

// Discard returns a logger that drops everything, for tests and defaults
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// Component returns an entry tagged with the component name
func Component(logger *logrus.Logger, name string) *logrus.Entry {
	return logger.WithField(FieldComponent, name)
}
