// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	dashboardfeature "github.com/saalesgu/wadua-ETL-ecommerce/internal/app/features/dashboard"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/numfmt"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the dashboard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base, sales_path, etc.
//   - Environment variables: WADUA_API_BASE, WADUA_SALES_PATH, etc.
//   - Command-line flags: --api_base, --sales_path, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base", Default: "http://localhost:8081", Desc: "Root URL of the stats API"},
	{Name: "sales_path", Default: "/api/ventas", Desc: "Sales statistics endpoint"},
	{Name: "products_path", Default: "/api/productos", Desc: "Product statistics endpoint"},
	{Name: "payments_path", Default: "/api/pagos", Desc: "Payment statistics endpoint"},
	{Name: "fetch_timeout", Default: "0s", Desc: "Per-request bound for view loads (e.g., 30s); 0 waits indefinitely"},
	{Name: "pane_rate_limit", Default: 120, Desc: "Pane requests per client per minute (0 disables)"},

	// Page layout
	{Name: "sales_container", Default: "ventas-content", Desc: "Element id of the sales container"},
	{Name: "products_container", Default: "productos-content", Desc: "Element id of the products container"},
	{Name: "payments_container", Default: "pagos-content", Desc: "Element id of the payments container"},
	{Name: "plotly_url", Default: "https://cdn.plot.ly/plotly-2.35.2.min.js", Desc: "Plotly script URL"},

	{Name: "number_locale", Default: numfmt.DefaultLocale, Desc: "Locale for number grouping (es-MX, en-US, es-ES, ...)"},
	{Name: "metrics_enabled", Default: true, Desc: "Serve Prometheus metrics at /metrics"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, WADUA_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "WADUA", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBase:       strings.TrimSpace(appValues.String("api_base")),
		SalesPath:     appValues.String("sales_path"),
		ProductsPath:  appValues.String("products_path"),
		PaymentsPath:  appValues.String("payments_path"),
		FetchTimeout:  appValues.Duration("fetch_timeout", 0),
		PaneRateLimit: appValues.Int("pane_rate_limit"),

		SalesContainer:    appValues.String("sales_container"),
		ProductsContainer: appValues.String("products_container"),
		PaymentsContainer: appValues.String("payments_container"),
		PlotlyURL:         appValues.String("plotly_url"),

		NumberLocale:   appValues.String("number_locale"),
		MetricsEnabled: appValues.Bool("metrics_enabled"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The stats backend URL, endpoint paths and locale are checked here so a
// typo fails at boot instead of on the first page load.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAppConfig(appCfg); err != nil {
		logger.Error("invalid dashboard configuration", zap.Error(err))
		return err
	}
	return nil
}

func validateAppConfig(appCfg AppConfig) error {
	u, err := url.Parse(appCfg.APIBase)
	if err != nil {
		return fmt.Errorf("invalid api_base: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api_base must be an absolute http(s) URL, got %q", appCfg.APIBase)
	}
	if appCfg.PaneRateLimit < 0 {
		return fmt.Errorf("pane_rate_limit must not be negative, got %d", appCfg.PaneRateLimit)
	}
	if appCfg.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout must not be negative, got %s", appCfg.FetchTimeout)
	}
	if _, err := dashboardConfig(appCfg); err != nil {
		return err
	}
	return nil
}

// dashboardConfig maps the app config onto the dashboard layout.
func dashboardConfig(appCfg AppConfig) (dashboardfeature.Config, error) {
	format, err := numfmt.New(appCfg.NumberLocale)
	if err != nil {
		return dashboardfeature.Config{}, fmt.Errorf("invalid number_locale: %w", err)
	}

	cfg := dashboardfeature.DefaultConfig()
	cfg.Sales.Endpoint = appCfg.SalesPath
	cfg.Sales.Container = appCfg.SalesContainer
	cfg.Products.Endpoint = appCfg.ProductsPath
	cfg.Products.Container = appCfg.ProductsContainer
	cfg.Payments.Endpoint = appCfg.PaymentsPath
	cfg.Payments.Container = appCfg.PaymentsContainer
	cfg.Format = format

	if err := cfg.Validate(); err != nil {
		return dashboardfeature.Config{}, err
	}
	return cfg, nil
}

// statsHTTPTimeout bounds the whole client when a fetch timeout is set, as a
// backstop for the per-request context.
func statsHTTPTimeout(appCfg AppConfig) time.Duration {
	if appCfg.FetchTimeout <= 0 {
		return 0
	}
	return appCfg.FetchTimeout + time.Second
}
