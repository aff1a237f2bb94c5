package user_client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/model"
)

const maxResponseBytes = 1 << 20

type HTTPClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        *logger.Logger
	metrics    metrics.MetricsProvider
}

// NewUserClient builds a client resolving profiles at GET {baseURL}/{id}.
func NewUserClient(baseURL string, timeout time.Duration, log *logger.Logger, metrics metrics.MetricsProvider) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With(slog.String("component", "user_client")),
		metrics:    metrics,
	}
}

type userResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (c *HTTPClient) GetUser(ctx context.Context, id string) (user *model.User, err error) {
	start := time.Now()
	defer func() {
		c.metrics.IncrementUserLookups(err == nil)
		c.metrics.RecordUserLookupDuration(time.Since(start))
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", custom_errors.ErrExternalServiceError, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("User service request failed", slog.String("user_id", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", custom_errors.ErrExternalServiceError, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, custom_errors.ErrUserNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: unexpected status %d", custom_errors.ErrExternalServiceError, resp.StatusCode)
	}

	var body userResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", custom_errors.ErrExternalServiceError, err)
	}

	return &model.User{ID: id, Username: body.Username, Email: body.Email}, nil
}
