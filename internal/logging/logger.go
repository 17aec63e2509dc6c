// Package logging builds the application's zap logger.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Name is the logger name attached to every entry.
const Name = "das-care-contact-forms"

// Options controls logger construction.
type Options struct {
	// Level is "debug", "info", "warn" or "error". Empty means info.
	Level string

	// File, when set, receives JSON log lines in addition to stderr.
	File string

	// Verbose forces debug level.
	Verbose bool
}

// New builds a logger writing console output to stderr and, optionally,
// JSON to a file.
//
// RETURNS:
//   - The logger.
//   - A cleanup func that flushes the logger and closes the log file.
//     It must be called once the logger is no longer used.
//   - An error if the level is invalid or the log file cannot be opened.
func New(opts Options) (*zap.Logger, func(), error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, nil, eris.Wrapf(err, "invalid log level %q", opts.Level)
		}
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stderr), level),
	}

	closeFile := func() {}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, nil, eris.Wrapf(err, "failed to create log directory for %s", opts.File)
		}
		sink, closeSink, err := zap.Open(opts.File)
		if err != nil {
			return nil, nil, eris.Wrapf(err, "failed to open log file %s", opts.File)
		}
		closeFile = closeSink
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			sink,
			level,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...)).Named(Name)
	cleanup := func() {
		_ = logger.Sync()
		closeFile()
	}
	return logger, cleanup, nil
}
