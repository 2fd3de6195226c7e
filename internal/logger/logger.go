// Package logger wraps zap with the level handling used by the server binary.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// ZapLogger holds the process-wide zap logger.
type ZapLogger struct {
	// Log is a no-op logger until Init succeeds.
	Log *zap.Logger
}

// New returns a ZapLogger backed by zap.NewNop.
func New() *ZapLogger {
	return &ZapLogger{Log: zap.NewNop()}
}

// Init replaces Log with a production logger at the given level
// ("debug", "info", "warn", "error", case-insensitive).
func (l *ZapLogger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	l.Log = zl
	return nil
}
