package prometheus_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	prometheus_metrics "blog-service/internal/metrics/prometheus"
)

func TestPrometheusMetricsProvider(t *testing.T) {
	provider := prometheus_metrics.NewPrometheusMetricsProvider()

	before := testutil.ToFloat64(prometheus_metrics.BlogOperationsTotal.WithLabelValues("create", "true"))
	provider.IncrementBlogOperations("create", true)
	after := testutil.ToFloat64(prometheus_metrics.BlogOperationsTotal.WithLabelValues("create", "true"))
	assert.Equal(t, before+1, after)

	lookupsBefore := testutil.ToFloat64(prometheus_metrics.UserLookupsTotal.WithLabelValues("false"))
	provider.IncrementUserLookups(false)
	assert.Equal(t, lookupsBefore+1, testutil.ToFloat64(prometheus_metrics.UserLookupsTotal.WithLabelValues("false")))

	provider.SetServiceHealth(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(prometheus_metrics.ServiceHealth))
	provider.SetServiceHealth(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(prometheus_metrics.ServiceHealth))

	httpBefore := testutil.ToFloat64(prometheus_metrics.HTTPRequestsTotal.WithLabelValues("GET", "/public/viewall", "200"))
	provider.IncrementHTTPRequests("GET", "/public/viewall", "200")
	provider.RecordHTTPRequestDuration("GET", "/public/viewall", "200", 10*time.Millisecond)
	assert.Equal(t, httpBefore+1, testutil.ToFloat64(prometheus_metrics.HTTPRequestsTotal.WithLabelValues("GET", "/public/viewall", "200")))
}
