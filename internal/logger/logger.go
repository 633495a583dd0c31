package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the run logger. JSON output suits cron-driven runs whose logs
// get collected; the development config is friendlier for manual runs.
// verbose lowers the production config to debug level (development already
// logs at debug).
func New(jsonOutput, verbose bool) (*zap.Logger, error) {
	if jsonOutput {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		return cfg.Build()
	}
	return zap.NewDevelopment()
}
