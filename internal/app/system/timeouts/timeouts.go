// Package timeouts provides centralized timeout values for the dashboard.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks against the stats backend
//   - Write: a single frame written to a dashboard socket
//   - Fetch: one view request to the stats backend; zero means unbounded,
//     so a hung backend keeps the loading indicator on screen
//
// Values can be changed at startup with Configure. If it is never called the
// defaults are used.
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing  = 2 * time.Second
	DefaultWrite = 10 * time.Second
	DefaultFetch = 0
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	ping  = DefaultPing
	write = DefaultWrite
	fetch = time.Duration(DefaultFetch)
)

// Ping returns the timeout for backend health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Write returns the deadline applied to each socket write.
func Write() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return write
}

// Fetch returns the per-request bound for view loads. Zero means none.
func Fetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return fetch
}

// Config holds timeout configuration values.
// Zero Ping and Write are ignored; a negative Fetch disables the fetch bound.
type Config struct {
	Ping  time.Duration
	Write time.Duration
	Fetch time.Duration
}

// Configure sets custom timeout values. It should be called during startup
// before handlers are built.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Write > 0 {
		write = cfg.Write
	}
	switch {
	case cfg.Fetch > 0:
		fetch = cfg.Fetch
	case cfg.Fetch < 0:
		fetch = 0
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	write = DefaultWrite
	fetch = DefaultFetch
}

// Current returns the current timeout configuration as a Config struct.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Write: write, Fetch: fetch}
}

// WithFetch bounds ctx by the fetch timeout when one is configured. The
// returned cancel logs a warning if the deadline was what ended the request.
func WithFetch(parent context.Context, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	d := Fetch()
	if d <= 0 {
		return context.WithCancel(parent)
	}
	return WithTimeout(parent, d, log, operation)
}

// WithTimeout creates a context with timeout and returns a cancel function that
// logs a warning if the context was canceled due to deadline exceeded.
//
// Example:
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Ping(), h.Log, "backend ping")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
