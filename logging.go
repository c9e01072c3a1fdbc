package osmroutes

import (
	"io"
	"log/slog"
)

// Numeric verbosity levels accepted by LogLevel
const (
	LOG_DEBUG   = 10
	LOG_INFO    = 20
	LOG_WARNING = 30
	LOG_ERROR   = 40
)

// LogLevel maps numeric verbosity (10 debug, 20 info, 30 warning, 40 error) to slog level
func LogLevel(level int) slog.Level {
	switch {
	case level <= LOG_DEBUG:
		return slog.LevelDebug
	case level <= LOG_INFO:
		return slog.LevelInfo
	case level <= LOG_WARNING:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// NewLogger returns text logger writing records at given numeric verbosity and above
func NewLogger(w io.Writer, level int) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: LogLevel(level)}))
}
