package blog_http

import (
	"context"
	"log/slog"
	"net/http"

	"blog-service/internal/logger"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checker HealthChecker
	log     *logger.Logger
}

func NewHealthHandler(checker HealthChecker, log *logger.Logger) *HealthHandler {
	return &HealthHandler{checker: checker, log: log}
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.checker.Ping(r.Context()); err != nil {
		h.log.Warn("Health check failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "degraded"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
