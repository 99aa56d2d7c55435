// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/ratelimit"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/statsapi"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ConnectDB builds the stats API client and the pane rate limiter.
//
// An unreachable backend does not abort startup: the dashboard shows the
// failure inside each view, and /health reports it.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	client, err := statsapi.NewClient(appCfg.APIBase, &http.Client{Timeout: statsHTTPTimeout(appCfg)})
	if err != nil {
		return DBDeps{}, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		logger.Warn("stats backend not reachable at startup",
			zap.String("api_base", client.BaseURL()),
			zap.Error(err))
	} else {
		logger.Info("stats backend reachable", zap.String("api_base", client.BaseURL()))
	}

	deps := DBDeps{Stats: client}
	if appCfg.PaneRateLimit > 0 {
		deps.PaneLimit = ratelimit.New(appCfg.PaneRateLimit, time.Minute)
	}
	return deps, nil
}

// EnsureSchema has nothing to set up; the dashboard owns no storage.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
