package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/cratedocs-web/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/cratedocs-web/internal/platform/telemetry"
)

// installTracer swaps the global tracer provider for one recording into
// memory. Tests using it must not run in parallel.
func installTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	return exporter
}

func onlySpan(t *testing.T, exporter *tracetest.InMemoryExporter) tracetest.SpanStub {
	t.Helper()
	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	return spans[0]
}

func spanAttr(span tracetest.SpanStub, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestOpenTelemetry_NamesSpanAfterRoute(t *testing.T) {
	exporter := installTracer(t)

	handler := routed("/-/sitemap/{letter}/sitemap.xml",
		func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) },
		middleware.OpenTelemetry(nil),
	)
	handler.ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodGet, "/-/sitemap/k/sitemap.xml", http.NoBody))

	span := onlySpan(t, exporter)
	if want := "GET /-/sitemap/{letter}/sitemap.xml"; span.Name != want {
		t.Errorf("span name = %q, want %q", span.Name, want)
	}

	wantAttrs := map[attribute.Key]string{
		telemetry.AttrHTTPMethod: "GET",
		telemetry.AttrHTTPRoute:  "/-/sitemap/{letter}/sitemap.xml",
		"url.path":               "/-/sitemap/k/sitemap.xml",
	}
	for key, want := range wantAttrs {
		got, ok := spanAttr(span, key)
		if !ok || got.AsString() != want {
			t.Errorf("%s = %q, want %q", key, got.AsString(), want)
		}
	}
	if got, ok := spanAttr(span, telemetry.AttrHTTPStatus); !ok || got.AsInt64() != http.StatusOK {
		t.Errorf("%s = %d, want 200", telemetry.AttrHTTPStatus, got.AsInt64())
	}
	if span.Status.Code == codes.Error {
		t.Error("span status = Error for a 200")
	}
}

func TestOpenTelemetry_UnmatchedRoute(t *testing.T) {
	exporter := installTracer(t)

	handler := middleware.OpenTelemetry(nil)(http.NotFoundHandler())
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))

	if span := onlySpan(t, exporter); span.Name != "GET unmatched" {
		t.Errorf("span name = %q, want %q", span.Name, "GET unmatched")
	}
}

func TestOpenTelemetry_ServerErrorMarksSpan(t *testing.T) {
	exporter := installTracer(t)

	handler := routed("/about/builds",
		func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
		middleware.OpenTelemetry(nil),
	)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/about/builds", http.NoBody))

	if span := onlySpan(t, exporter); span.Status.Code != codes.Error {
		t.Errorf("span status = %v, want Error", span.Status.Code)
	}
}

func TestOpenTelemetry_ContinuesInboundTrace(t *testing.T) {
	exporter := installTracer(t)

	handler := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", http.NoBody)
	req.Header.Set("Traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	span := onlySpan(t, exporter)
	if got := span.SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace ID = %s, want inbound trace", got)
	}
	if got := span.Parent.SpanID().String(); got != "00f067aa0ba902b7" {
		t.Errorf("parent span ID = %s, want inbound span", got)
	}
}

func TestOpenTelemetry_RecordsRequestMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "test")
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	handler := routed("/about/{name}",
		func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) },
		middleware.OpenTelemetry(metrics),
	)
	for _, page := range []string{"badges", "metadata", "download"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/about/"+page, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("data = %T, want Sum[int64]", m.Data)
			}
			if len(sum.DataPoints) != 1 {
				t.Fatalf("series = %d, want 1 for a single route", len(sum.DataPoints))
			}
			dp := sum.DataPoints[0]
			if dp.Value != 3 {
				t.Errorf("count = %d, want 3", dp.Value)
			}
			if route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute); route.AsString() != "/about/{name}" {
				t.Errorf("route = %q, want /about/{name}", route.AsString())
			}
			return
		}
	}
	t.Fatal("http.server.request.total not recorded")
}
