package cfg

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger from the config: human-friendly output
// in dev mode, JSON in production, level taken from LOG_LEVEL.
func NewLogger(c Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	switch c.ServerMode {
	case ModeProduction:
		zapCfg = zap.NewProductionConfig()
	default:
		zapCfg = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
