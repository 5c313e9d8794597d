// Package logging builds the zap logger shared by the CLI.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// level is shared by every logger built with New so verbosity can be raised
// after construction.
var level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

// New builds a console logger writing to stderr at the shared level.
func New() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = level
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true

	return config.Build()
}

// SetVerbose switches the shared level between debug and warn.
func SetVerbose(verbose bool) {
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
		return
	}

	level.SetLevel(zapcore.WarnLevel)
}

// Level reports the current shared level.
func Level() zapcore.Level {
	return level.Level()
}
