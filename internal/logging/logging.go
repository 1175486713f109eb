// Package logging builds the process-wide zerolog root logger. Console
// output goes to stderr so command output on stdout stays parseable;
// the console sink is pretty-printed only when stderr is a terminal.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const consoleTimeFormat = "2006-01-02T15:04:05Z07:00"

type Config struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `yaml:"level"`
	// File, when set, receives JSON log lines in addition to the console.
	File string `yaml:"file"`
}

// New builds the root logger from config. The returned closer releases
// the log file, if one was opened.
func New(cfg Config) (zerolog.Logger, func()) {
	zerolog.TimeFieldFormat = consoleTimeFormat

	writers := []io.Writer{consoleWriter(os.Stderr)}
	closer := func() {}

	if path := strings.TrimSpace(cfg.File); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging: failed opening log file %q: %v\n", path, err)
		} else {
			writers = append(writers, zerolog.SyncWriter(f))
			closer = func() { _ = f.Close() }
		}
	}

	root := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(cfg.Level, zerolog.InfoLevel)).
		With().Timestamp().Logger()
	return root, closer
}

func consoleWriter(f *os.File) io.Writer {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return zerolog.ConsoleWriter{Out: f, TimeFormat: consoleTimeFormat}
	}
	return f
}

// ParseLevel maps a config string to a zerolog level, falling back to def.
func ParseLevel(s string, def zerolog.Level) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return def
	}
}
