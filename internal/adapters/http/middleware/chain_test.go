package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/CodeJamboree/action-builder/internal/adapters/http/middleware"
	appctx "github.com/CodeJamboree/action-builder/internal/app/context"
)

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) middleware.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+":before")
				next.ServeHTTP(w, r)
				order = append(order, name+":after")
			})
		}
	}

	handler := middleware.Chain(mw("outer"), mw("inner"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	want := []string{"outer:before", "inner:before", "handler", "inner:after", "outer:after"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestStack_Length(t *testing.T) {
	t.Parallel()

	if got := len(middleware.Stack(nil, nil, 0)); got != 6 {
		t.Errorf("len(Stack) without timeout = %d, want 6", got)
	}
	if got := len(middleware.Stack(nil, nil, time.Second)); got != 7 {
		t.Errorf("len(Stack) with timeout = %d, want 7", got)
	}
}

func TestStack_FullPipeline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := middleware.Chain(middleware.Stack(logger, nil, 5*time.Second)...)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if middleware.RequestIDFromContext(ctx) == "" {
				t.Error("request ID not in context")
			}
			if middleware.CorrelationIDFromContext(ctx) == "" {
				t.Error("correlation ID not in context")
			}
			if appctx.FromContext(ctx) == nil {
				t.Error("RequestContext not in context")
			}
			if _, ok := ctx.Deadline(); !ok {
				t.Error("request has no deadline")
			}
			w.WriteHeader(http.StatusNoContent)
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/catalog/reload", http.NoBody))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if rec.Header().Get("X-Request-ID") == "" || rec.Header().Get("X-Correlation-ID") == "" {
		t.Error("response missing ID headers")
	}

	logs := buf.String()
	for _, want := range []string{"request started", "request completed", "status=204"} {
		if !strings.Contains(logs, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestStack_RecoversPanicBehindTimeout(t *testing.T) {
	t.Parallel()

	handler := middleware.Chain(middleware.Stack(nil, nil, time.Second)...)(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
