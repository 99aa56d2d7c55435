package dashboard

import (
	"fmt"
	"strings"

	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/numfmt"
)

// View identifies one of the three dashboard sections.
type View string

const (
	ViewSales    View = "sales"
	ViewProducts View = "products"
	ViewPayments View = "payments"
)

// Views lists the sections in tab order.
var Views = []View{ViewSales, ViewProducts, ViewPayments}

// noun is the word used in loading and failure messages.
func (v View) noun() string {
	switch v {
	case ViewSales:
		return "ventas"
	case ViewProducts:
		return "productos"
	case ViewPayments:
		return "pagos"
	}
	return string(v)
}

// ViewConfig binds a view to its endpoint and its place on the page.
type ViewConfig struct {
	Endpoint  string // path under the stats API base, e.g. /api/ventas
	Container string // element whose content the view owns
	Tab       string // tab pane anchor, e.g. #ventas
	Label     string // tab caption

	// LoadOnShow re-runs the load every time the tab is shown.
	LoadOnShow bool
}

// Config is everything a Controller needs to know about the page.
type Config struct {
	Sales    ViewConfig
	Products ViewConfig
	Payments ViewConfig

	Format *numfmt.Formatter
}

// DefaultConfig returns the layout the page template ships with.
func DefaultConfig() Config {
	return Config{
		Sales: ViewConfig{
			Endpoint:  "/api/ventas",
			Container: "ventas-content",
			Tab:       "#ventas",
			Label:     "Ventas",
		},
		Products: ViewConfig{
			Endpoint:   "/api/productos",
			Container:  "productos-content",
			Tab:        "#productos",
			Label:      "Productos",
			LoadOnShow: true,
		},
		Payments: ViewConfig{
			Endpoint:   "/api/pagos",
			Container:  "pagos-content",
			Tab:        "#pagos",
			Label:      "Pagos",
			LoadOnShow: true,
		},
		Format: numfmt.MustNew(numfmt.DefaultLocale),
	}
}

// View returns the configuration of v.
func (c Config) View(v View) (ViewConfig, bool) {
	switch v {
	case ViewSales:
		return c.Sales, true
	case ViewProducts:
		return c.Products, true
	case ViewPayments:
		return c.Payments, true
	}
	return ViewConfig{}, false
}

// Lookup resolves a tab signal to a view. It accepts the tab anchor with or
// without '#' ("#productos", "productos") and the view name ("products").
func (c Config) Lookup(tab string) (View, bool) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tab), "#"))
	if key == "" {
		return "", false
	}
	for _, v := range Views {
		vc, _ := c.View(v)
		if key == string(v) || key == strings.ToLower(strings.TrimPrefix(vc.Tab, "#")) {
			return v, true
		}
	}
	return "", false
}

// Validate checks that every view has an endpoint and a distinct container.
func (c Config) Validate() error {
	seen := make(map[string]View, len(Views))
	for _, v := range Views {
		vc, _ := c.View(v)
		if !strings.HasPrefix(vc.Endpoint, "/") {
			return fmt.Errorf("dashboard: %s endpoint must start with '/', got %q", v, vc.Endpoint)
		}
		if vc.Container == "" {
			return fmt.Errorf("dashboard: %s container is empty", v)
		}
		if other, dup := seen[vc.Container]; dup {
			return fmt.Errorf("dashboard: %s and %s share container %q", other, v, vc.Container)
		}
		seen[vc.Container] = v
	}
	if c.Format == nil {
		return fmt.Errorf("dashboard: number formatter is required")
	}
	return nil
}
