// Package logging builds the charmbracelet/log loggers used across the app.
// When a log file is configured, output goes to a size-rotated file so the
// terminal UI keeps exclusive use of stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/tui2048/internal/config"
)

// Logger is a configured logger together with the sink it owns.
type Logger struct {
	*log.Logger
	closer io.Closer
}

// New creates a logger for cfg.
// Output goes to cfg.File when set, otherwise to fallback. A nil fallback discards output.
func New(cfg config.LogConfig, fallback io.Writer, prefix string) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var (
		w      io.Writer = fallback
		closer io.Closer
	)
	if cfg.File != "" {
		lj, err := rotatingFile(cfg)
		if err != nil {
			return nil, err
		}
		w, closer = lj, lj
	}
	if w == nil {
		w = io.Discard
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})

	return &Logger{Logger: l, closer: closer}, nil
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// ParseLevel converts a level name into a log.Level. An empty name means info.
func ParseLevel(name string) (log.Level, error) {
	if name == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return level, nil
}

func rotatingFile(cfg config.LogConfig) (*lumberjack.Logger, error) {
	path, err := config.ExpandHome(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}, nil
}
