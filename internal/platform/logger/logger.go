// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup installs a JSON handler at the given level as the default logger.
// Unknown levels fall back to info.
func Setup(level string) *slog.Logger {
	return setup(os.Stdout, level)
}

func setup(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(log)
	return log
}
