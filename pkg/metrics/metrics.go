package metrics

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

type contextKey struct{}

// NewRelicContextKey is the context key holding the *newrelic.Application
// that custom metrics are recorded against.
var NewRelicContextKey = contextKey{}

// NewContext returns a context that records custom metrics to app.
func NewContext(ctx context.Context, app *newrelic.Application) context.Context {
	return context.WithValue(ctx, NewRelicContextKey, app)
}

// RecordCount records a count metric. It's a no-op without an application in
// the context.
func RecordCount(ctx context.Context, metricName string, count uint64) {
	nr, ok := ctx.Value(NewRelicContextKey).(*newrelic.Application)
	if ok && nr != nil {
		nr.RecordCustomMetric(metricName, float64(count))
	}
}
