package library

import "go.uber.org/zap"

// NewLogger builds a console logger for the CLI. An empty or unknown level
// falls back to info.
func NewLogger(level string) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	l, _ := cfg.Build()
	return l
}
