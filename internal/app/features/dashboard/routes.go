// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/ratelimit"
)

// Routes wires the dashboard feature under whatever mount point
// the top-level router chooses (e.g., "/dashboard").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Final path will be /dashboard when mounted at "/dashboard".
	r.Get("/", h.ServePage)

	// Page socket: one controller per connection.
	r.Get("/ws", h.ServeSocket)

	// HTMX endpoint for a single pane. Each request hits the stats backend.
	panes := r.With()
	if h.PaneLimit != nil {
		panes = r.With(ratelimit.Middleware(h.PaneLimit, h.Log))
	}
	panes.Get("/panes/{view}", h.ServePane)

	return r
}
