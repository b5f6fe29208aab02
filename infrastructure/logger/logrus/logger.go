// ABOUTME: Structured logger implementation backed by sirupsen/logrus
// ABOUTME: Supports JSON or text output, level filtering and optional rotating file output via lumberjack

package logrus

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a Logger
type Options struct {
	// Level is a logrus level name such as "debug" or "info"
	Level string

	// Format is "json" or "text"
	Format string

	// File, when set, is also written to through a rotating writer
	File string

	// Output overrides stdout as the primary destination
	Output io.Writer
}

// Logger implements the Logger interface on top of a logrus.Logger
type Logger struct {
	log  *logrus.Logger
	file *lumberjack.Logger
}

// NewLogger builds a logger from opts. An unknown level or format is an error.
func NewLogger(opts Options) (*Logger, error) {
	l := logrus.New()

	level := opts.Level
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l.SetLevel(parsed)

	switch opts.Format {
	case "", "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	var out io.Writer = os.Stdout
	if opts.Output != nil {
		out = opts.Output
	}

	logger := &Logger{log: l}
	if opts.File != "" {
		logger.file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = io.MultiWriter(out, logger.file)
	}
	l.SetOutput(out)

	return logger, nil
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

// Writer returns a writer that logs each line at level; used for the HTTP server error log
func (l *Logger) Writer(level logrus.Level) *io.PipeWriter {
	return l.log.WriterLevel(level)
}

// Close releases the rotating file, if any
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) entry(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return logrus.NewEntry(l.log)
	}
	return l.log.WithFields(logrus.Fields(fields))
}
