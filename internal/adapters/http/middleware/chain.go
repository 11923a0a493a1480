package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/CodeJamboree/action-builder/internal/platform/telemetry"
)

// Middleware is the shape every function in this package returns.
type Middleware = func(http.Handler) http.Handler

// Stack returns the inbound chain, outermost first. A zero timeout leaves
// requests without a deadline.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []Middleware {
	stack := []Middleware{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		AppContext(),
		OpenTelemetry(metrics),
		Logging(logger),
	}
	if timeout > 0 {
		stack = append(stack, Timeout(timeout))
	}
	return stack
}

// Chain composes middleware so that the first argument runs first:
// Chain(a, b)(h) is a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
