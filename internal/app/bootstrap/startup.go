// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the backend client
// is built, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{Fetch: appCfg.FetchTimeout})
	t := timeouts.Current()
	logger.Info("dashboard configured",
		zap.String("api_base", appCfg.APIBase),
		zap.Duration("ping_timeout", t.Ping),
		zap.Duration("write_timeout", t.Write),
		zap.Duration("fetch_timeout", t.Fetch),
		zap.Bool("metrics_enabled", appCfg.MetricsEnabled))
	return nil
}
