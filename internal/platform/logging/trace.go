package logging

import (
	"net/http"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// traceContext parses the W3C traceparent header:
// {version}-{trace-id}-{parent-id}-{trace-flags}
var traceContext = propagation.TraceContext{}

// spanContextFromRequest returns the remote span context carried by r, or an
// invalid span context when the header is missing or malformed.
func spanContextFromRequest(r *http.Request) trace.SpanContext {
	ctx := traceContext.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	return trace.SpanContextFromContext(ctx)
}

func loggerWithTrace(base *zap.Logger, sc trace.SpanContext, requestID string) *zap.Logger {
	if base == nil {
		base = zap.NewNop()
	}
	fields := traceFields(sc)
	if requestID != "" {
		fields = append(fields, zap.String("requestId", requestID))
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}

func traceFields(sc trace.SpanContext) []zap.Field {
	if !sc.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String("traceId", sc.TraceID().String()),
		zap.String("spanId", sc.SpanID().String()),
		zap.Bool("traceSampled", sc.IsSampled()),
	}
}

// correlationID prefers the trace ID and falls back to the request ID.
func correlationID(sc trace.SpanContext, requestID string) string {
	if sc.IsValid() {
		return sc.TraceID().String()
	}
	return requestID
}
