package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"blog-service/internal/config"
	blog_http "blog-service/internal/delivery/http/blog"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/middleware"
)

type Server struct {
	blogHandler *blog_http.BlogHandler
	server      *http.Server
	cfg         config.HTTPServer
	log         *logger.Logger
	metrics     metrics.MetricsProvider
}

func NewServer(blogHandler *blog_http.BlogHandler, cfg config.HTTPServer, log *logger.Logger, metrics metrics.MetricsProvider) *Server {
	s := &Server{
		blogHandler: blogHandler,
		cfg:         cfg,
		log:         log,
		metrics:     metrics,
	}
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chi_middleware.RequestID)
	r.Use(chi_middleware.RealIP)
	r.Use(middleware.Metrics(s.metrics))
	r.Use(middleware.RequestLogger(s.log))
	r.Use(chi_middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: s.cfg.CorsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.HeaderUserID, middleware.HeaderUserRole},
		MaxAge:         300,
	}).Handler)

	s.blogHandler.Register(r)
	return r
}

func (s *Server) Run() error {
	s.log.Info("Starting HTTP server", slog.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
