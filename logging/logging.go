// Package logging configures the process wide zap logger.
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "2006-01-02 15:04:05"

// New builds a console logger writing to stderr at level.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, eris.Wrapf(err, "invalid log level %q", level)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Development = false
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	cfg.EncoderConfig.EncodeLevel = levelEncoder(os.Stderr.Fd())

	logger, err := cfg.Build()
	if err != nil {
		return nil, eris.Wrap(err, "building logger")
	}
	return logger, nil
}

// Setup installs a logger at level as zap's global logger.
func Setup(level string) error {
	logger, err := New(level)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

func levelEncoder(fd uintptr) zapcore.LevelEncoder {
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return zapcore.CapitalColorLevelEncoder
	}
	return zapcore.CapitalLevelEncoder
}
