// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/ratelimit"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/statsapi"
)

// DBDeps holds back-end dependencies for the app.
// The dashboard keeps no database of its own; its only backend is the
// stats API.
type DBDeps struct {
	Stats *statsapi.Client

	// PaneLimit guards the pane endpoint, which fetches from Stats on every
	// request. Nil when pane_rate_limit is 0.
	PaneLimit *ratelimit.Limiter
}
