package user_client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	user_client "blog-service/internal/clients/user"
	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	prometheus_metrics "blog-service/internal/metrics/prometheus"
)

func newClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *user_client.HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return user_client.NewUserClient(server.URL+"/user", timeout, logger.New("test"), prometheus_metrics.NewPrometheusMetricsProvider())
}

func TestHTTPClient_GetUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/user/64b7f0c2e1a4b5c6d7e8f901", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"_id":"64b7f0c2e1a4b5c6d7e8f901","username":"alice","email":"alice@example.com","password":"x"}`))
		}, time.Second)

		user, err := client.GetUser(context.Background(), "64b7f0c2e1a4b5c6d7e8f901")
		require.NoError(t, err)
		assert.Equal(t, "64b7f0c2e1a4b5c6d7e8f901", user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}, time.Second)

		user, err := client.GetUser(context.Background(), "missing")
		assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("ServerError", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}, time.Second)

		_, err := client.GetUser(context.Background(), "u1")
		assert.ErrorIs(t, err, custom_errors.ErrExternalServiceError)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}, time.Second)

		_, err := client.GetUser(context.Background(), "u1")
		assert.ErrorIs(t, err, custom_errors.ErrExternalServiceError)
	})

	t.Run("Timeout", func(t *testing.T) {
		release := make(chan struct{})
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}, 50*time.Millisecond)
		defer close(release)

		start := time.Now()
		_, err := client.GetUser(context.Background(), "u1")
		assert.ErrorIs(t, err, custom_errors.ErrExternalServiceError)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("Unreachable", func(t *testing.T) {
		client := user_client.NewUserClient("http://127.0.0.1:1/user", time.Second, logger.New("test"), prometheus_metrics.NewPrometheusMetricsProvider())

		_, err := client.GetUser(context.Background(), "u1")
		assert.ErrorIs(t, err, custom_errors.ErrExternalServiceError)
	})
}
