package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupExporter(t *testing.T) (*tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	prev := tracer
	tracer = tp.Tracer(instrumentationName)
	t.Cleanup(func() {
		tracer = prev
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
	})
	return exporter, tp
}

func attrMap(attrs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value
	}
	return m
}

func TestMiddleware_CreatesSpanWithRoute(t *testing.T) {
	exporter, tp := setupExporter(t)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /news", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	rr := httptest.NewRecorder()
	Middleware(mux).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/news?page=2", nil))
	require.NoError(t, tp.ForceFlush(context.Background()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /news", spans[0].Name)

	attrs := attrMap(spans[0].Attributes)
	assert.Equal(t, int64(200), attrs["http.status_code"].AsInt64())
	assert.Equal(t, "GET", attrs["http.method"].AsString())
	assert.Equal(t, "GET /news", attrs["http.route"].AsString())
	assert.NotEmpty(t, rr.Header().Get("X-Trace-Id"))
	assert.Equal(t, spans[0].SpanContext.TraceID().String(), rr.Header().Get("X-Trace-Id"))
}

func TestMiddleware_PropagatesTraceContext(t *testing.T) {
	exporter, tp := setupExporter(t)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	const parentTraceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodGet, "/sources", nil)
	req.Header.Set("traceparent", "00-"+parentTraceID+"-00f067aa0ba902b7-01")

	Middleware(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), req)
	require.NoError(t, tp.ForceFlush(context.Background()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, parentTraceID, spans[0].SpanContext.TraceID().String())
}

func TestMiddleware_ErrorStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantError bool
	}{
		{"server error", http.StatusInternalServerError, true},
		{"client error", http.StatusBadRequest, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter, tp := setupExporter(t)

			h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/posts", nil))
			require.NoError(t, tp.ForceFlush(context.Background()))

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			_, hasError := attrMap(spans[0].Attributes)["error"]
			assert.Equal(t, tt.wantError, hasError)
			if tt.wantError {
				assert.Equal(t, codes.Error, spans[0].Status.Code)
			}
		})
	}
}
