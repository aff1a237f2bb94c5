package prometheus

import (
	"strconv"
	"time"

	"blog-service/internal/metrics"
)

type PrometheusMetricsProvider struct{}

func NewPrometheusMetricsProvider() metrics.MetricsProvider {
	return &PrometheusMetricsProvider{}
}

func (p *PrometheusMetricsProvider) IncrementHTTPRequests(method, route, status string) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
}

func (p *PrometheusMetricsProvider) RecordHTTPRequestDuration(method, route, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementDatabaseQueries(queryType string, success bool) {
	DatabaseQueriesTotal.WithLabelValues(queryType, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) RecordDatabaseQueryDuration(queryType string, duration time.Duration) {
	DatabaseQueryDuration.WithLabelValues(queryType).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementUserLookups(success bool) {
	UserLookupsTotal.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) RecordUserLookupDuration(duration time.Duration) {
	UserLookupDuration.Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementBlogOperations(operation string, success bool) {
	BlogOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) SetServiceHealth(healthy bool) {
	if healthy {
		ServiceHealth.Set(1)
	} else {
		ServiceHealth.Set(0)
	}
}
