// Package logging builds the zerolog logger used for diagnostics on stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Out        io.Writer
}

// DefaultConfig logs warnings and errors to stderr in console format.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.WarnLevel,
		Format:     FormatConsole,
		TimeFormat: time.Kitchen,
		Out:        os.Stderr,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    !isTerminal(out),
		}
	}

	return zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// Configure applies level and format strings (as given on the command line or
// in BO_LOG_LEVEL / BO_LOG_FORMAT) on top of cfg. Empty strings keep cfg's value.
func Configure(cfg Config, level, format string) (Config, error) {
	if level != "" {
		lvl, err := zerolog.ParseLevel(level)
		if err != nil {
			return cfg, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = lvl
	}

	switch format {
	case "":
	case FormatConsole, FormatJSON:
		cfg.Format = format
	default:
		return cfg, fmt.Errorf("invalid log format %q: want %s or %s", format, FormatConsole, FormatJSON)
	}

	return cfg, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
