package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CodeJamboree/action-builder/internal/adapters/http/middleware"
	appctx "github.com/CodeJamboree/action-builder/internal/app/context"
)

func TestAppContext_FreshPerRequest(t *testing.T) {
	t.Parallel()

	var seen []*appctx.RequestContext
	handler := middleware.AppContext()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = append(seen, appctx.FromContext(r.Context()))
	}))

	for range 2 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/actions", http.NoBody))
	}

	if seen[0] == nil || seen[1] == nil {
		t.Fatal("RequestContext missing from request context")
	}
	if seen[0] == seen[1] {
		t.Error("requests share one RequestContext")
	}
}

func TestAppContext_MemoizesWithinRequest(t *testing.T) {
	t.Parallel()

	calls := 0
	provider := appctx.NewDataProvider("catalog", func(context.Context) (int, error) {
		calls++
		return calls, nil
	})

	handler := middleware.AppContext()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		first, _ := provider.Get(r.Context())
		second, _ := provider.Get(r.Context())
		if first != second {
			t.Errorf("provider returned %d then %d within one request", first, second)
		}
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if calls != 2 {
		t.Errorf("fetch calls = %d, want one per request", calls)
	}
}

func TestAppContext_CarriesRequestIDs(t *testing.T) {
	t.Parallel()

	handler := middleware.Chain(middleware.RequestID(), middleware.AppContext())(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			rc := appctx.FromContext(r.Context())
			if middleware.RequestIDFromContext(rc) == "" {
				t.Error("RequestContext lost the request ID")
			}
		}),
	)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
}
