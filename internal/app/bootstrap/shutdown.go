// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops the rate limiter and releases the stats client's idle
// connections.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.PaneLimit != nil {
		deps.PaneLimit.Close()
	}
	if deps.Stats != nil {
		logger.Info("closing stats API client")
		deps.Stats.Close()
	}
	return nil
}
