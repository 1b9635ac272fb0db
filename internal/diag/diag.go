package diag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02T15:04:05Z07:00"

// Logger bundles the configured logger with the file backing it.
type Logger struct {
	*logrus.Logger
	path string
	file *os.File
}

// Path returns the log file being written, or "" when logging is discarded.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Close flushes and closes the log file. Safe to call on a discard logger.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Open creates the parent directory of path and appends to the file there.
// An unknown level falls back to info and is reported once in the log.
func Open(path, level string) (*Logger, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := &Logger{Logger: newLogger(file, level), path: path, file: file}
	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: newLogger(io.Discard, "")}
}

// OpenOrDiscard is Open with a fallback: when the file cannot be opened the
// reason is written to notice and a discard logger is returned.
func OpenOrDiscard(path, level string, notice io.Writer) *Logger {
	l, err := Open(path, level)
	if err != nil {
		if notice != nil {
			fmt.Fprintf(notice, "launchtrack: logging disabled: %v\n", err)
		}
		return Discard()
	}
	return l
}

func newLogger(out io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})

	lvl, err := ParseLevel(level)
	logger.SetLevel(lvl)
	if err != nil {
		logger.WithError(err).Warn("unknown log level, using info")
	}
	return logger
}

// ParseLevel maps a config value onto a logrus level. Blank means info.
func ParseLevel(level string) (logrus.Level, error) {
	trimmed := strings.TrimSpace(level)
	if trimmed == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(trimmed)
	if err != nil {
		return logrus.InfoLevel, err
	}
	return lvl, nil
}
