package dashboard

import (
	"context"
	"errors"
	"html/template"
	"sync"
	"time"

	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/metrics"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/statsapi"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Fetcher retrieves and decodes one stats envelope.
type Fetcher interface {
	Get(ctx context.Context, path string, out any) error
}

// Surface is the page the controller draws on.
type Surface interface {
	// Replace swaps the whole content of a container.
	Replace(container string, markup template.HTML) error
	// Plot draws a chart into a mount element that already exists.
	Plot(mount string, spec statsapi.ChartSpec) error
}

// State is the observable status of a view.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return "idle"
}

// Controller runs fetch → render → display cycles for the three views of
// one page.
//
// Every load bumps the view's generation. When a response arrives it is only
// drawn if no newer load of the same view has started since; otherwise it is
// dropped. Loads of different views never interact.
type Controller struct {
	cfg     Config
	fetch   Fetcher
	surface Surface
	metrics *metrics.Metrics
	log     *zap.Logger

	mu    sync.Mutex // orders generation checks with surface writes
	gen   map[View]uint64
	state map[View]State

	wg sync.WaitGroup
}

// NewController builds a controller for one page. m may be nil.
func NewController(cfg Config, fetch Fetcher, surface Surface, m *metrics.Metrics, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		cfg:     cfg,
		fetch:   fetch,
		surface: surface,
		metrics: m,
		log:     logger,
		gen:     make(map[View]uint64, len(Views)),
		state:   make(map[View]State, len(Views)),
	}
}

// Init loads the sales view. It does not wait for a tab signal.
func (c *Controller) Init(ctx context.Context) {
	c.LoadSales(ctx)
}

// Activate handles a tab-shown signal.
func (c *Controller) Activate(ctx context.Context, tab string) {
	v, ok := c.cfg.Lookup(tab)
	if !ok {
		c.log.Debug("ignoring unknown tab", zap.String("tab", tab))
		return
	}
	vc, _ := c.cfg.View(v)
	if !vc.LoadOnShow {
		return
	}
	c.Load(ctx, v)
}

func (c *Controller) LoadSales(ctx context.Context)    { c.Load(ctx, ViewSales) }
func (c *Controller) LoadProducts(ctx context.Context) { c.Load(ctx, ViewProducts) }
func (c *Controller) LoadPayments(ctx context.Context) { c.Load(ctx, ViewPayments) }

// Load shows the loading indicator for v right away and fetches the view in
// the background. It never returns an error: every failure ends up on the
// page, inside v's container.
func (c *Controller) Load(ctx context.Context, v View) {
	vc, ok := c.cfg.View(v)
	if !ok {
		c.log.Warn("load requested for unknown view", zap.String("view", string(v)))
		return
	}

	c.mu.Lock()
	c.gen[v]++
	gen := c.gen[v]
	c.state[v] = StateLoading
	c.replace(vc.Container, RenderLoading(v))
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.complete(ctx, v, vc, gen)
	}()
}

// Wait blocks until every load started so far has finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// State reports the current state of v.
func (c *Controller) State(v View) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state[v]
}

func (c *Controller) complete(ctx context.Context, v View, vc ViewConfig, gen uint64) {
	log := c.log.With(zap.String("view", string(v)), zap.String("endpoint", vc.Endpoint), zap.Uint64("generation", gen))

	fctx, cancel := timeouts.WithFetch(ctx, log, "fetch "+string(v))
	start := time.Now()
	pane, err := c.fetchAndRender(fctx, v, vc)
	cancel()
	elapsed := time.Since(start).Seconds()

	if ctx.Err() != nil {
		// The page went away; there is nothing left to draw on.
		c.metrics.ObserveLoad(string(v), metrics.OutcomeCanceled, elapsed)
		log.Debug("load canceled", zap.Error(ctx.Err()))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen[v] != gen {
		c.metrics.ObserveLoad(string(v), metrics.OutcomeStale, elapsed)
		log.Debug("discarding stale response", zap.Uint64("current", c.gen[v]))
		return
	}

	switch {
	case err == nil:
		c.state[v] = StateLoaded
		c.metrics.ObserveLoad(string(v), metrics.OutcomeLoaded, elapsed)
		c.replace(vc.Container, pane.Markup)
		for _, ch := range pane.Charts {
			if perr := c.surface.Plot(ch.MountID, ch.Spec); perr != nil {
				log.Debug("plot failed", zap.String("mount", ch.MountID), zap.Error(perr))
			}
		}
		log.Debug("view loaded", zap.Float64("seconds", elapsed))

	case errors.Is(err, statsapi.ErrAPIFailure):
		c.state[v] = StateFailed
		c.metrics.ObserveLoad(string(v), metrics.OutcomeAPIFail, elapsed)
		c.replace(vc.Container, RenderAPIFailure(v))
		log.Warn("stats backend reported failure")

	case errors.Is(err, statsapi.ErrTransport):
		c.state[v] = StateFailed
		c.metrics.ObserveLoad(string(v), metrics.OutcomeTransport, elapsed)
		c.replace(vc.Container, RenderTransportFailure(err))
		log.Warn("stats request failed", zap.Error(err))

	default:
		// Rendering errors are ours, not the backend's; keep the detail in the log.
		c.state[v] = StateFailed
		c.metrics.ObserveLoad(string(v), metrics.OutcomeAPIFail, elapsed)
		c.replace(vc.Container, RenderAPIFailure(v))
		log.Error("view render failed", zap.Error(err))
	}
}

func (c *Controller) fetchAndRender(ctx context.Context, v View, vc ViewConfig) (Pane, error) {
	switch v {
	case ViewSales:
		var resp statsapi.SalesResponse
		if err := c.fetch.Get(ctx, vc.Endpoint, &resp); err != nil {
			return Pane{}, err
		}
		return RenderSales(&resp, c.cfg.Format)
	case ViewProducts:
		var resp statsapi.ProductsResponse
		if err := c.fetch.Get(ctx, vc.Endpoint, &resp); err != nil {
			return Pane{}, err
		}
		return RenderProducts(&resp, c.cfg.Format)
	default:
		var resp statsapi.PaymentsResponse
		if err := c.fetch.Get(ctx, vc.Endpoint, &resp); err != nil {
			return Pane{}, err
		}
		return RenderPayments(&resp, c.cfg.Format)
	}
}

// replace must be called with c.mu held.
func (c *Controller) replace(container string, markup template.HTML) {
	if err := c.surface.Replace(container, markup); err != nil {
		c.log.Debug("surface write failed", zap.String("container", container), zap.Error(err))
	}
}
