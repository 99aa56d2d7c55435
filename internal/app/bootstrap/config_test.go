package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	errorsfeature "github.com/saalesgu/wadua-ETL-ecommerce/internal/app/features/errors"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/metrics"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/testutil"
	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		APIBase:           "http://localhost:8081",
		SalesPath:         "/api/ventas",
		ProductsPath:      "/api/productos",
		PaymentsPath:      "/api/pagos",
		SalesContainer:    "ventas-content",
		ProductsContainer: "productos-content",
		PaymentsContainer: "pagos-content",
		PlotlyURL:         "https://cdn.plot.ly/plotly-2.35.2.min.js",
		NumberLocale:      "es-MX",
	}
}

func TestValidateAppConfig(t *testing.T) {
	if err := validateAppConfig(validAppConfig()); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"relative api_base", func(c *AppConfig) { c.APIBase = "/api" }},
		{"non-http api_base", func(c *AppConfig) { c.APIBase = "ftp://stats" }},
		{"missing host", func(c *AppConfig) { c.APIBase = "http://" }},
		{"relative path", func(c *AppConfig) { c.ProductsPath = "api/productos" }},
		{"duplicate container", func(c *AppConfig) { c.PaymentsContainer = "ventas-content" }},
		{"unsupported locale", func(c *AppConfig) { c.NumberLocale = "tlh" }},
		{"negative timeout", func(c *AppConfig) { c.FetchTimeout = -time.Second }},
		{"negative rate limit", func(c *AppConfig) { c.PaneRateLimit = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			tt.mutate(&cfg)
			if err := validateAppConfig(cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDashboardConfig_UsesConfiguredLayout(t *testing.T) {
	app := validAppConfig()
	app.PaymentsPath = "/v2/pagos"
	app.PaymentsContainer = "payments-box"
	app.NumberLocale = "en-US"

	cfg, err := dashboardConfig(app)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Payments.Endpoint != "/v2/pagos" || cfg.Payments.Container != "payments-box" {
		t.Errorf("payments view = %+v", cfg.Payments)
	}
	if cfg.Format.Locale() != "en-US" {
		t.Errorf("locale = %q", cfg.Format.Locale())
	}
	if !cfg.Products.LoadOnShow || cfg.Sales.LoadOnShow {
		t.Errorf("activation policy changed: sales=%v products=%v", cfg.Sales.LoadOnShow, cfg.Products.LoadOnShow)
	}
}

func TestStatsHTTPTimeout(t *testing.T) {
	app := validAppConfig()
	if got := statsHTTPTimeout(app); got != 0 {
		t.Errorf("no fetch timeout: got %s, want 0", got)
	}
	app.FetchTimeout = 30 * time.Second
	if got := statsHTTPTimeout(app); got <= app.FetchTimeout {
		t.Errorf("client timeout %s should exceed fetch timeout %s", got, app.FetchTimeout)
	}
}

func TestRouter(t *testing.T) {
	backend := testutil.NewStatsBackend(t)
	logger := zap.NewNop()
	dashCfg, err := dashboardConfig(validAppConfig())
	if err != nil {
		t.Fatal(err)
	}
	deps := DBDeps{Stats: backend.Client(t)}
	r := newRouter(dashCfg, deps, metrics.New(), "https://cdn.plot.ly/plotly-2.35.2.min.js",
		errorsfeature.NewErrorLogger(logger), logger)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		return rec
	}

	if rec := get("/"); rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard" {
		t.Errorf("GET / = %d Location=%q", rec.Code, rec.Header().Get("Location"))
	}

	if rec := get("/health"); rec.Code != http.StatusOK {
		t.Errorf("GET /health = %d", rec.Code)
	}

	rec := get("/dashboard/panes/payments")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<td>credit_card</td>") {
		t.Errorf("GET /dashboard/panes/payments = %d\n%s", rec.Code, rec.Body.String())
	}

	rec = get("/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `wadua_view_loads_total{outcome="loaded",view="payments"} 1`) {
		t.Errorf("load not counted:\n%s", rec.Body.String())
	}
}

func TestConnectDB_BuildsClientAndLimiter(t *testing.T) {
	backend := testutil.NewStatsBackend(t)
	app := validAppConfig()
	app.APIBase = backend.URL()
	app.PaneRateLimit = 2

	deps, err := ConnectDB(context.Background(), nil, app, zap.NewNop())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	if deps.Stats == nil || deps.Stats.BaseURL() != backend.URL() {
		t.Fatalf("stats client = %+v", deps.Stats)
	}
	if deps.PaneLimit == nil || deps.PaneLimit.Remaining("198.51.100.1") != 2 {
		t.Fatalf("pane limiter not built from pane_rate_limit")
	}

	if err := Shutdown(context.Background(), nil, app, deps, zap.NewNop()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	// Closing again must be harmless.
	deps.PaneLimit.Close()
}

func TestConnectDB_NoLimiterWhenDisabled(t *testing.T) {
	backend := testutil.NewStatsBackend(t)
	app := validAppConfig()
	app.APIBase = backend.URL()

	deps, err := ConnectDB(context.Background(), nil, app, zap.NewNop())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	defer deps.Stats.Close()
	if deps.PaneLimit != nil {
		t.Error("limiter built with pane_rate_limit=0")
	}
}
