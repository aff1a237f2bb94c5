package metrics_server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	metrics_server "blog-service/internal/delivery/metrics"
	"blog-service/internal/logger"
	prometheus_metrics "blog-service/internal/metrics/prometheus"
)

func TestMetricsServer_ExposesCollectors(t *testing.T) {
	prometheus_metrics.NewPrometheusMetricsProvider().SetServiceHealth(true)
	srv := metrics_server.NewMetricsServer("127.0.0.1", 0, logger.New("test"))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "service_health 1")
}
