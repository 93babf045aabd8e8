package service

import (
	"fmt"

	"github.com/topfreegames/payout/internal/core/logs"
	"go.uber.org/zap"
)

// ConfigureLogging replaces the global zap logger with one built from the
// given preset. Every entry carries the payout service name.
func ConfigureLogging(configPreset string) error {
	var cfg zap.Config
	switch configPreset {
	case "development":
		cfg = zap.NewDevelopmentConfig()
	case "production":
		cfg = zap.NewProductionConfig()
	default:
		return fmt.Errorf("unexpected log_config: %v", configPreset)
	}

	cfg.InitialFields = map[string]interface{}{logs.LogFieldServiceName: "payout"}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)
	return nil
}
