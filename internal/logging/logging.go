package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/courseload/internal/config"
	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the process logger. Records go to the rotating file named by
// cfg.File, and also to stderr when verbose is set. With neither, logs are
// discarded. The returned close func releases the file.
func New(cfg config.LogConfig, stderr io.Writer, verbose bool) (*slog.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = log.DebugLevel
	}

	closer := func() error { return nil }
	var writers []io.Writer
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log dir: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		writers = append(writers, file)
		closer = file.Close
	}
	if verbose && stderr != nil {
		writers = append(writers, stderr)
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	handler := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		ReportCaller:    verbose,
		Level:           level,
		Prefix:          "courseload",
	})
	return slog.New(handler), closer, nil
}
