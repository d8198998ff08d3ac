package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.request.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.response.status_code")
	AttrDBOperation = attribute.Key("db.operation.name")
	AttrOperation   = attribute.Key("operation")
	AttrResult      = attribute.Key("result")
)

// Result label values shared by every instrument.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics holds the service's metric instruments. A nil *Metrics records
// nothing.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter

	// BlockingTaskDuration and BlockingTaskTotal cover storage calls run on
	// the offload pool, labelled by operation and result.
	BlockingTaskDuration metric.Float64Histogram
	BlockingTaskTotal    metric.Int64Counter

	DBQueryDuration metric.Float64Histogram
}

// NewMetrics creates every instrument on a meter scoped to serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	var errs []error

	seconds := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return h
	}
	count := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return c
	}

	m := &Metrics{
		ServerRequestDuration: seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    count("http.server.request.total", "Total number of incoming HTTP requests", "{request}"),
		BlockingTaskDuration:  seconds("worker.blocking.duration", "Duration of blocking storage calls run off the request path"),
		BlockingTaskTotal:     count("worker.blocking.total", "Total number of blocking storage calls", "{task}"),
		DBQueryDuration:       seconds("db.client.operation.duration", "Duration of Postgres statements"),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordServerRequest records one served request. route is the matched
// route pattern, never the raw path, so shard letters and page names do not
// multiply series.
func (m *Metrics) RecordServerRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if status >= 500 {
		result = ResultError
	}
	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(route),
		AttrHTTPStatus.Int(status),
		AttrResult.String(result),
	)
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}

// RecordBlockingTask records one task run on the offload pool.
func (m *Metrics) RecordBlockingTask(ctx context.Context, op, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		AttrOperation.String(op),
		AttrResult.String(result),
	)
	m.BlockingTaskDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.BlockingTaskTotal.Add(ctx, 1, attrs)
}

// RecordDBQuery records one database statement.
func (m *Metrics) RecordDBQuery(ctx context.Context, op string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.DBQueryDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		AttrDBOperation.String(op),
		AttrResult.String(result),
	))
}
