package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/theyuvrajyadav/currency-converter/internal/config"
)

// New builds a zap logger from the logging config: production JSON encoding
// or the development console one, filtered to the configured level.
func New(cfg *config.LoggingConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zapCfg.Level = level

	return zapCfg.Build()
}
