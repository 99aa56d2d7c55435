package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/statsapi"
)

// Default endpoint paths served by StatsBackend.
const (
	SalesPath    = "/api/ventas"
	ProductsPath = "/api/productos"
	PaymentsPath = "/api/pagos"
)

// StatsBackend is a fake stats API. Bodies can be swapped per path at any
// time and every hit is counted.
type StatsBackend struct {
	srv *httptest.Server

	mu     sync.Mutex
	bodies map[string]string
	hits   map[string]int
}

// NewStatsBackend starts a backend serving the sample envelopes. It is shut
// down when the test ends.
func NewStatsBackend(t *testing.T) *StatsBackend {
	t.Helper()
	b := &StatsBackend{
		bodies: map[string]string{
			SalesPath:    SalesBody,
			ProductsPath: ProductsWithCategories("cama_mesa_banho", "beleza_saude"),
			PaymentsPath: PaymentsWithMethods("credit_card", "boleto"),
		},
		hits: make(map[string]int),
	}
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *StatsBackend) serve(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.hits[r.URL.Path]++
	body, ok := b.bodies[r.URL.Path]
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"endpoint no encontrado"}`))
		return
	}
	_, _ = w.Write([]byte(body))
}

// URL is the backend root.
func (b *StatsBackend) URL() string {
	return b.srv.URL
}

// Set replaces the body served for path.
func (b *StatsBackend) Set(path, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bodies[path] = body
}

// Hits reports how many requests path has received.
func (b *StatsBackend) Hits(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[path]
}

// Client returns a stats client pointed at the backend.
func (b *StatsBackend) Client(t *testing.T) *statsapi.Client {
	t.Helper()
	c, err := statsapi.NewClient(b.srv.URL, b.srv.Client())
	if err != nil {
		t.Fatalf("statsapi.NewClient: %v", err)
	}
	return c
}
