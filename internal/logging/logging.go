// Package logging builds the zerolog logger used for diagnostics. Command
// output goes to stdout directly; logs go to stderr.
package logging

import (
	"io"
	"strings"

	"github.com/alexanderramin/tt/internal/config"
	"github.com/rs/zerolog"
)

// ParseLevel maps a config level to zerolog, falling back to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

func New(cfg config.LoggingConfig, w io.Writer) zerolog.Logger {
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	}
	return zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}
