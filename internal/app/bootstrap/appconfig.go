// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like ports, TLS,
// logging and request limits. AppConfig is where the dashboard keeps where
// the stats backend lives and how the page is laid out.
type AppConfig struct {
	// Stats backend
	APIBase       string        // Absolute root of the stats API (e.g., http://localhost:8081)
	SalesPath     string        // Sales endpoint under APIBase
	ProductsPath  string        // Products endpoint under APIBase
	PaymentsPath  string        // Payments endpoint under APIBase
	FetchTimeout  time.Duration // Per-request bound for view loads; 0 means none
	PaneRateLimit int           // Pane requests allowed per client per minute; 0 disables

	// Page layout
	SalesContainer    string // Element id owned by the sales view
	ProductsContainer string // Element id owned by the products view
	PaymentsContainer string // Element id owned by the payments view
	PlotlyURL         string // Script URL of the charting library

	// Presentation
	NumberLocale string // Locale used to group formatted numbers (e.g., es-MX)

	// Observability
	MetricsEnabled bool // Serve Prometheus metrics at /metrics
}
