package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"

	"blog-service/internal/metrics"
)

// Metrics records request count and latency labelled by the matched route pattern.
func Metrics(provider metrics.MetricsProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chi_middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			statusLabel := strconv.Itoa(status)

			provider.IncrementHTTPRequests(r.Method, route, statusLabel)
			provider.RecordHTTPRequestDuration(r.Method, route, statusLabel, time.Since(start))
		})
	}
}
