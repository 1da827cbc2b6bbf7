// Package logging builds the slog logger used by the contact book.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Options selects the minimum level, the record format and the destination.
// A nil Output writes to stderr.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// New returns a logger for options. An unrecognized level or format falls
// back to the default and the returned logger records a warning about it.
func New(options Options) *slog.Logger {
	output := options.Output
	if output == nil {
		output = os.Stderr
	}

	var opts slog.HandlerOptions
	var warnings []string
	switch strings.ToLower(options.Level) {
	case "":
	case types.LogLevelDebug:
		opts.Level = slog.LevelDebug
	case types.LogLevelInfo:
		opts.Level = slog.LevelInfo
	case types.LogLevelWarn:
		opts.Level = slog.LevelWarn
	case types.LogLevelError:
		opts.Level = slog.LevelError
	default:
		warnings = append(warnings, "could not parse logger level")
	}

	var handler slog.Handler
	switch strings.ToLower(options.Format) {
	case types.LogFormatJSON:
		handler = slog.NewJSONHandler(output, &opts)
	case "", types.LogFormatText:
		handler = slog.NewTextHandler(output, &opts)
	default:
		handler = slog.NewTextHandler(output, &opts)
		warnings = append(warnings, "could not parse logger format")
	}

	logger := slog.New(handler)
	for _, w := range warnings {
		logger.Warn(w, "level", options.Level, "format", options.Format)
	}
	return logger
}

// FromConfig returns a logger for the log settings in cfg.
func FromConfig(cfg types.Config, output io.Writer) *slog.Logger {
	return New(Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: output})
}
