package metrics

import "time"

type MetricsProvider interface {
	IncrementHTTPRequests(method, route, status string)
	RecordHTTPRequestDuration(method, route, status string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementUserLookups(success bool)
	RecordUserLookupDuration(duration time.Duration)

	IncrementBlogOperations(operation string, success bool)

	SetServiceHealth(healthy bool)
}
