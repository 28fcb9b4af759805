package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap logger at the given level. An unparseable
// level falls back to info.
func New(logLevel string) *zap.Logger {
	config := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	config.Level.SetLevel(level)
	l, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
