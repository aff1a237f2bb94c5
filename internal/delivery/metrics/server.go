package metrics_server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-service/internal/logger"
)

type MetricsServer struct {
	server *http.Server
	log    *logger.Logger
}

func NewMetricsServer(address string, port int, log *logger.Logger) *MetricsServer {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", address, port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

func (s *MetricsServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *MetricsServer) Run() error {
	s.log.Info("Starting metrics server", slog.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
