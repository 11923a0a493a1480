package middleware

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/CodeJamboree/action-builder/internal/platform/telemetry"
)

// OpenTelemetry starts a server span per request, continuing any W3C trace
// context found in the headers, and records server metrics. metrics may be
// nil.
func OpenTelemetry(metrics *telemetry.Metrics) Middleware {
	tracer := otel.GetTracerProvider().Tracer(telemetry.InstrumentationScope)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			sr := newStatusRecorder(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			span.SetAttributes(telemetry.AttrHTTPStatus.Int(sr.status))
			if sr.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(sr.status))
			}

			metrics.RecordServerRequest(ctx, r.Method, sr.status, time.Since(start))
		})
	}
}
