// Package logging builds the zap logger used for run diagnostics.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the log file written under Options.Dir.
const FileName = "conncheck.log"

type Options struct {
	Verbose bool      // debug output on Console
	Console io.Writer // default: os.Stderr
	Dir     string    // if set, JSON logs rotate under this directory
}

// New returns a logger for opts. With neither Verbose nor Dir set it
// returns a no-op logger.
func New(opts Options) (*zap.Logger, error) {
	var cores []zapcore.Core

	if opts.Verbose {
		console := opts.Console
		if console == nil {
			console = os.Stderr
		}
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(console), zap.DebugLevel))
	}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, err
		}
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(opts.Dir, FileName),
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     14, // days
			Compress:   true,
		})
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "ts"
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, zap.DebugLevel))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...)), nil
}
