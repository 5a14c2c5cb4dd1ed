package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Supported values for the log format setting.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatZap  = "zap"
)

// New builds a Logger for the given format and level name ("debug", "info",
// "warn", "error").
func New(w io.Writer, format, level string) (Logger, error) {
	switch strings.ToLower(format) {
	case "", FormatText, FormatJSON:
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(levelOrDefault(level))); err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		if strings.EqualFold(format, FormatJSON) {
			return NewSlogJSON(w, lvl), nil
		}
		return NewSlogText(w, lvl), nil

	case FormatZap:
		lvl, err := zapcore.ParseLevel(levelOrDefault(level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		return NewZapJSON(w, lvl), nil

	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	return level
}
