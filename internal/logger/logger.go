// Package logger builds the zap logger shared by the CLI and the session.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvMode selects the encoder: "production" gives JSON, anything else the
// human-friendly console encoder.
const EnvMode = "TOPUP_ENV"

// New returns a logger writing to stderr. Verbose lowers the level to debug,
// which reports every skipped line; otherwise only warnings and errors show.
func New(verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	if os.Getenv(EnvMode) == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	return cfg.Build()
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync(l *zap.Logger) {
	_ = l.Sync()
}
