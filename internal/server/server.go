// Package server exposes the Prometheus metrics endpoint for runs started
// with --metrics-listen. The server lives exactly as long as the run's
// context and shuts down cleanly when the message has been delivered.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/viviai0214/fancy-hello-world/internal/logging"
)

// ShutdownGrace is how long an in-flight scrape gets to finish once the run
// context is cancelled.
const ShutdownGrace = 2 * time.Second

// MetricsServer serves a Prometheus registry over HTTP.
type MetricsServer struct {
	addr     string
	registry *prometheus.Registry
	logger   logging.Logger
}

// New creates a MetricsServer for the given listen address and registry.
//
// Parameters:
//   - addr: The TCP listen address (e.g. ":9090").
//   - registry: The Prometheus registry to expose.
//   - logger: The application logger.
//
// Returns:
//   - *MetricsServer: The server instance.
func New(addr string, registry *prometheus.Registry, logger logging.Logger) *MetricsServer {
	return &MetricsServer{addr: addr, registry: registry, logger: logger}
}

// Run listens on the configured address and serves /metrics until ctx is
// cancelled, then shuts down gracefully. It blocks for the lifetime of the
// server.
//
// Parameters:
//   - ctx: The run context; cancellation triggers shutdown.
//
// Returns:
//   - error: A listen or serve failure, or nil on clean shutdown.
func (s *MetricsServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info("metrics endpoint listening", logging.String("addr", ln.Addr().String()))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("metrics server stopped", err)
		return err
	}
	return nil
}

// Addr returns the configured listen address.
func (s *MetricsServer) Addr() string { return s.addr }
