package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/CodeJamboree/action-builder/internal/adapters/http/middleware"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// captureIDs runs the ID middleware and returns the IDs seen by the handler.
func captureIDs(t *testing.T, req *http.Request) (reqID, corrID string, rec *httptest.ResponseRecorder) {
	t.Helper()

	h := middleware.Chain(middleware.RequestID(), middleware.CorrelationID())(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			reqID = middleware.RequestIDFromContext(r.Context())
			corrID = middleware.CorrelationIDFromContext(r.Context())
		}),
	)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return reqID, corrID, rec
}

func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	reqID, corrID, rec := captureIDs(t, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if !uuidV4.MatchString(reqID) {
		t.Errorf("request ID %q is not a UUID v4", reqID)
	}
	if got := rec.Header().Get("X-Request-ID"); got != reqID {
		t.Errorf("X-Request-ID header = %q, want %q", got, reqID)
	}
	if corrID != reqID {
		t.Errorf("correlation ID = %q, want fallback to request ID %q", corrID, reqID)
	}
}

func TestRequestID_Unique(t *testing.T) {
	t.Parallel()

	a, _, _ := captureIDs(t, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	b, _, _ := captureIDs(t, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	if a == b {
		t.Errorf("two requests got the same ID %q", a)
	}
}

func TestIDs_ReuseInboundHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Request-ID", "req-1")
	req.Header.Set("X-Correlation-ID", "corr-1")

	reqID, corrID, rec := captureIDs(t, req)

	if reqID != "req-1" || corrID != "corr-1" {
		t.Errorf("IDs = (%q, %q), want (req-1, corr-1)", reqID, corrID)
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != "corr-1" {
		t.Errorf("X-Correlation-ID header = %q, want corr-1", got)
	}
}

func TestIDs_EmptyWithoutMiddleware(t *testing.T) {
	t.Parallel()

	ctx := httptest.NewRequest(http.MethodGet, "/", http.NoBody).Context()
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty", id)
	}
	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		t.Errorf("CorrelationIDFromContext = %q, want empty", id)
	}
}
