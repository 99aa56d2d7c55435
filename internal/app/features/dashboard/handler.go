package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	uierrors "github.com/saalesgu/wadua-ETL-ecommerce/internal/app/features/errors"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/metrics"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// Handler is the dependency container for the dashboard feature. Each page
// socket gets its own Controller built from these dependencies.
type Handler struct {
	Config    Config
	Fetch     Fetcher
	Metrics   *metrics.Metrics
	PlotlyURL string
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger

	// PaneLimit bounds pane requests per client. Nil disables the limit.
	PaneLimit *ratelimit.Limiter

	upgrader websocket.Upgrader
}

// NewHandler constructs a new Handler.
func NewHandler(cfg Config, fetch Fetcher, m *metrics.Metrics, plotlyURL string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Config:    cfg,
		Fetch:     fetch,
		Metrics:   m,
		PlotlyURL: plotlyURL,
		ErrLog:    errLog,
		Log:       logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
		},
	}
}

type tabVM struct {
	View      string
	Anchor    string
	Label     string
	Container string
	Active    bool

	// Loading is the spinner markup the page script shows while it fetches a
	// pane over plain HTTP. It is a string so the attribute keeps the tags
	// escaped instead of stripped.
	Loading string
}

type pageData struct {
	Title      string
	Tabs       []tabVM
	PlotlyURL  string
	SocketPath string
	PanePath   string
}

// ServePage renders the tabbed page. The containers start empty; the page
// script opens the socket and the controller fills them.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "dashboard_page", h.page())
}

func (h *Handler) page() pageData {
	data := pageData{
		Title:      "Dashboard de Ventas",
		PlotlyURL:  h.PlotlyURL,
		SocketPath: "/dashboard/ws",
		PanePath:   "/dashboard/panes/",
	}
	for i, v := range Views {
		vc, _ := h.Config.View(v)
		data.Tabs = append(data.Tabs, tabVM{
			View:      string(v),
			Anchor:    strings.TrimPrefix(vc.Tab, "#"),
			Label:     vc.Label,
			Container: vc.Container,
			Active:    i == 0,
			Loading:   string(RenderLoading(v)),
		})
	}
	return data
}

// ServeSocket upgrades to a websocket and runs one Controller for the
// lifetime of the connection.
func (h *Handler) ServeSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error response.
		h.Log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	log := h.Log.With(zap.String("session", uuid.NewString()))
	ctx, cancel := context.WithCancel(r.Context())

	h.Metrics.SessionOpened()
	defer h.Metrics.SessionClosed()

	ctl := NewController(h.Config, h.Fetch, &socketSurface{conn: conn}, h.Metrics, log)
	log.Debug("dashboard session opened")
	ctl.Init(ctx)

	err = readTabs(ctx, conn, ctl)
	if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
		log.Warn("dashboard socket closed unexpectedly", zap.Error(err))
	}

	cancel()
	ctl.Wait()
	log.Debug("dashboard session closed")
}

type plotJSON struct {
	Mount  string          `json:"mount"`
	Data   json.RawMessage `json:"data"`
	Layout json.RawMessage `json:"layout"`
}

// ServePane loads one view synchronously and returns the final fragment,
// followed by the charts as a JSON script block. It serves pages that swap
// panes over plain HTTP instead of the socket.
func (h *Handler) ServePane(w http.ResponseWriter, r *http.Request) {
	v := View(chi.URLParam(r, "view"))
	vc, ok := h.Config.View(v)
	if !ok {
		http.Error(w, "unknown view", http.StatusNotFound)
		return
	}

	rec := NewRecorder()
	ctl := NewController(h.Config, h.Fetch, rec, h.Metrics, h.Log)
	ctl.Load(r.Context(), v)
	ctl.Wait()

	plots := []plotJSON{}
	for _, p := range rec.Plots() {
		plots = append(plots, plotJSON{Mount: p.Mount, Data: p.Spec.Data, Layout: p.Spec.Layout})
	}
	payload, err := json.Marshal(plots)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "failed to encode chart specs", err, "No se pudieron preparar los gráficos.")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(rec.Markup(vc.Container)))
	_, _ = w.Write([]byte(`<script type="application/json" class="pane-plots">`))
	_, _ = w.Write(payload)
	_, _ = w.Write([]byte(`</script>`))
}
