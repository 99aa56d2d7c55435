// Command mockstats serves canned sales, product and payment statistics in
// the shape the dashboard expects, for local development without the real
// stats backend.
//
// Query parameters on any endpoint:
//
//	?fail=api    answer {"success":false,...}
//	?fail=parse  answer a body that is not JSON
//	?delay=2s    wait before answering
package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

//go:embed fixtures/*.json
var fixtures embed.FS

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", envOr("MOCKSTATS_ADDR", ":8081"), "listen address")
	debug := flag.Bool("debug", os.Getenv("MOCKSTATS_DEBUG") == "true", "enable debug logging")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newRouter(logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("mock stats backend listening", zap.String("addr", *addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// endpoints maps served paths to fixture files.
var endpoints = map[string]string{
	"/api/ventas":    "fixtures/ventas.json",
	"/api/productos": "fixtures/productos.json",
	"/api/pagos":     "fixtures/pagos.json",
}

func newRouter(logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	for path, file := range endpoints {
		r.Get(path, serveFixture(file, logger))
	}
	return r
}

func serveFixture(file string, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if d := q.Get("delay"); d != "" {
			wait, err := time.ParseDuration(d)
			if err != nil {
				http.Error(w, "invalid delay", http.StatusBadRequest)
				return
			}
			select {
			case <-time.After(wait):
			case <-r.Context().Done():
				return
			}
		}

		logger.Debug("serving fixture",
			zap.String("path", r.URL.Path),
			zap.String("fail", q.Get("fail")))

		switch q.Get("fail") {
		case "api":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"success":false,"error":"simulated query failure"}`))
			return
		case "parse":
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html><body>502 Bad Gateway</body></html>"))
			return
		}

		body, err := fixtures.ReadFile(file)
		if err != nil {
			logger.Error("fixture missing", zap.String("file", file), zap.Error(err))
			http.Error(w, "fixture missing", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}
}
