// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	dashboardfeature "github.com/saalesgu/wadua-ETL-ecommerce/internal/app/features/dashboard"
	errorsfeature "github.com/saalesgu/wadua-ETL-ecommerce/internal/app/features/errors"
	healthfeature "github.com/saalesgu/wadua-ETL-ecommerce/internal/app/features/health"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/metrics"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the backend client, and the Startup
// hook are ready. It boots the template engine and mounts the dashboard,
// health, metrics and static routes.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	dashCfg, err := dashboardConfig(appCfg)
	if err != nil {
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	var m *metrics.Metrics
	if appCfg.MetricsEnabled {
		m = metrics.New()
	}

	logger.Info("dashboard layout ready",
		zap.String("number_locale", dashCfg.Format.Locale()),
		zap.Bool("pane_rate_limit", deps.PaneLimit != nil))

	return newRouter(dashCfg, deps, m, appCfg.PlotlyURL, errLog, logger), nil
}

// newRouter mounts the feature routers. It does not touch the template
// engine, so tests can build it directly.
func newRouter(dashCfg dashboardfeature.Config, deps DBDeps, m *metrics.Metrics, plotlyURL string, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// The dashboard is the only page.
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/dashboard", http.StatusSeeOther)
	})

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Stats, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	dashboardHandler := dashboardfeature.NewHandler(dashCfg, deps.Stats, m, plotlyURL, errLog, logger)
	dashboardHandler.PaneLimit = deps.PaneLimit
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	if m != nil {
		r.Handle("/metrics", m.Handler())
	}

	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r
}
