// Package iologger sets up the slog logger used for machine-readable logs.
// Messages meant for people go through gn.Info and gn.Warn instead.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/data4safety/d4s/pkg/config"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "d4s.log"

// Init sets the default slog logger. With destination "file" the log goes
// to LogFile in logDir; appendLog keeps previous entries, otherwise the
// file starts fresh.
func Init(logDir string, cfg config.LogConfig, appendLog bool) error {
	var writer io.Writer

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if appendLog {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		file, err := os.OpenFile(logPath, flags, 0644)
		if err != nil {
			return CreateLogFileError(logPath, err)
		}
		writer = file
	default:
		writer = os.Stderr
	}

	slog.SetDefault(slog.New(newHandler(writer, cfg)))
	return nil
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	switch cfg.Format {
	case "text", "tint":
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
