package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New constructs the service's JSON slog logger on stdout.
func New() *slog.Logger {
	return NewTo(os.Stdout)
}

// NewTo writes JSON logs to w. The MCP server uses stderr because stdout
// carries the protocol stream.
func NewTo(w io.Writer) *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("service", "cosmic-rhythm")
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
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
