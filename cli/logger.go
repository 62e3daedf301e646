package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LoggerOption configures a logger.
type LoggerOption func(*logrus.Logger)

// WithOutput sets the logger output.
func WithOutput(w io.Writer) LoggerOption {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithLevel sets the log level.
func WithLevel(level logrus.Level) LoggerOption {
	return func(l *logrus.Logger) {
		l.SetLevel(level)
	}
}

// WithLevelName sets the level from a name such as "debug". Unknown names
// leave the level unchanged.
func WithLevelName(name string) LoggerOption {
	return func(l *logrus.Logger) {
		if level, err := logrus.ParseLevel(name); err == nil {
			l.SetLevel(level)
		}
	}
}

// WithFormatter sets the log formatter.
func WithFormatter(formatter logrus.Formatter) LoggerOption {
	return func(l *logrus.Logger) {
		l.SetFormatter(formatter)
	}
}

// NewLogger creates a standalone logger writing to stderr.
func NewLogger(opts ...LoggerOption) *logrus.Logger {
	return Configure(logrus.New(), append([]LoggerOption{WithOutput(os.Stderr)}, opts...)...)
}

// Configure applies opts to an existing logger and returns it.
func Configure(l *logrus.Logger, opts ...LoggerOption) *logrus.Logger {
	for _, opt := range opts {
		opt(l)
	}
	return l
}
