package delivery_http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blog-service/internal/config"
	delivery_http "blog-service/internal/delivery/http"
	blog_http "blog-service/internal/delivery/http/blog"
	"blog-service/internal/logger"
	prometheus_metrics "blog-service/internal/metrics/prometheus"
	service_mock "blog-service/mocks/service"
)

func newServer(t *testing.T, svc *service_mock.Service) *delivery_http.Server {
	t.Helper()
	log := logger.New("test")
	cfg := config.HTTPServer{Address: "127.0.0.1", Port: 0, CorsAllowedOrigins: []string{"https://blog.example.com"}}
	return delivery_http.NewServer(blog_http.NewBlogHandler(svc, log), cfg, log, prometheus_metrics.NewPrometheusMetricsProvider())
}

func TestServer_Router(t *testing.T) {
	t.Run("Serves health", func(t *testing.T) {
		svc := service_mock.NewService(t)
		svc.On("Ping", mock.Anything).Return(nil)

		rec := httptest.NewRecorder()
		newServer(t, svc).Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("Answers CORS preflight for allowed origin", func(t *testing.T) {
		svc := service_mock.NewService(t)

		req := httptest.NewRequest(http.MethodOptions, "/user/create-blog", nil)
		req.Header.Set("Origin", "https://blog.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "x-user-id")
		rec := httptest.NewRecorder()
		newServer(t, svc).Router().ServeHTTP(rec, req)

		assert.Equal(t, "https://blog.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Recovers from panics", func(t *testing.T) {
		svc := service_mock.NewService(t)
		svc.On("Ping", mock.Anything).Run(func(mock.Arguments) { panic("boom") })

		rec := httptest.NewRecorder()
		newServer(t, svc).Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
