package statsapi_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/statsapi"
)

func newBackend(t *testing.T, body string) *statsapi.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := statsapi.NewClient(srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	for _, base := range []string{"", "/api", "ftp://host", "localhost:8081"} {
		if _, err := statsapi.NewClient(base, nil); err == nil {
			t.Errorf("NewClient(%q): expected error", base)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"http://stats:8081", "/api/ventas", "http://stats:8081/api/ventas"},
		{"http://stats:8081/", "/api/ventas", "http://stats:8081/api/ventas"},
		{"https://gw.example.com/production", "/api/pagos", "https://gw.example.com/production/api/pagos"},
		{"http://stats:8081", "/api/pagos?fail=api", "http://stats:8081/api/pagos?fail=api"},
	}
	for _, tt := range tests {
		c, err := statsapi.NewClient(tt.base, nil)
		if err != nil {
			t.Fatalf("NewClient(%q): %v", tt.base, err)
		}
		if got := c.Resolve(tt.path); got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}

func TestGet_Success(t *testing.T) {
	c := newBackend(t, `{"success":true,
		"stats":{"total_ventas":1000.5,"total_ordenes":5,"periodos":1,"ventas_promedio":1000.5},
		"data":[{"periodo":"2024-01","total_ordenes":5,"total_ventas":1000.5}],
		"charts":{"ventas":{"data":[{"type":"bar"}],"layout":{"title":"Ventas"}},"ordenes":{"data":[],"layout":{}}}}`)

	var resp statsapi.SalesResponse
	if err := c.Get(context.Background(), "/api/ventas", &resp); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.Stats.TotalVentas != 1000.5 {
		t.Errorf("TotalVentas = %v, want 1000.5", resp.Stats.TotalVentas)
	}
	if len(resp.Data) != 1 || resp.Data[0].Periodo != "2024-01" {
		t.Errorf("unexpected rows: %+v", resp.Data)
	}
	if string(resp.Charts.Ventas.Layout) != `{"title":"Ventas"}` {
		t.Errorf("layout not forwarded verbatim: %s", resp.Charts.Ventas.Layout)
	}
}

func TestGet_APIFailure(t *testing.T) {
	c := newBackend(t, `{"success":false,"error":"duckdb exploded","data":"not an array"}`)

	var resp statsapi.ProductsResponse
	err := c.Get(context.Background(), "/api/productos", &resp)
	if !errors.Is(err, statsapi.ErrAPIFailure) {
		t.Fatalf("expected ErrAPIFailure, got %v", err)
	}
	if strings.Contains(err.Error(), "duckdb") {
		t.Errorf("backend detail leaked into error: %v", err)
	}
}

func TestGet_MissingSuccessIsAPIFailure(t *testing.T) {
	c := newBackend(t, `{"error":"endpoint no encontrado"}`)

	var resp statsapi.PaymentsResponse
	if err := c.Get(context.Background(), "/api/pagos", &resp); !errors.Is(err, statsapi.ErrAPIFailure) {
		t.Fatalf("expected ErrAPIFailure, got %v", err)
	}
}

func TestGet_InvalidJSONIsTransport(t *testing.T) {
	c := newBackend(t, `<html>502 Bad Gateway</html>`)

	var resp statsapi.SalesResponse
	err := c.Get(context.Background(), "/api/ventas", &resp)
	if !errors.Is(err, statsapi.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestGet_ConnectionRefusedIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := statsapi.NewClient(base, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	var resp statsapi.SalesResponse
	err = c.Get(context.Background(), "/api/ventas", &resp)
	if !errors.Is(err, statsapi.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if !strings.Contains(err.Error(), "connect") {
		t.Errorf("expected failure description in error, got %q", err.Error())
	}
}

func TestPing(t *testing.T) {
	c := newBackend(t, `{}`)
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestCause(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: %w", statsapi.ErrTransport, errors.New("connection refused")), "connection refused"},
		{fmt.Errorf("%w: decode body: %w", statsapi.ErrTransport, errors.New("invalid character '<'")), "decode body: invalid character '<'"},
		{errors.New("other"), "other"},
	}
	for _, tt := range tests {
		if got := statsapi.Cause(tt.err); got != tt.want {
			t.Errorf("Cause(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
