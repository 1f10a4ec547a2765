package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "newsblog"

var tracer = otel.Tracer(instrumentationName)

func GetTracer() trace.Tracer {
	return tracer
}

// TraceID returns the hex trace id of span, or "" when it has none.
func TraceID(span trace.Span) string {
	sc := span.SpanContext()
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
