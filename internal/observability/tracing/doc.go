// Package tracing wires OpenTelemetry spans into the HTTP stack.
//
// No exporter is configured here; spans reach whatever TracerProvider is
// installed globally (otel.SetTracerProvider).
//
//	handler = tracing.Middleware(mux)
//
//	ctx, span := tracing.GetTracer().Start(ctx, "ingest source")
//	defer span.End()
package tracing
