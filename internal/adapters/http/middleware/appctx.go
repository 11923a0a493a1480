package middleware

import (
	"net/http"

	appctx "github.com/CodeJamboree/action-builder/internal/app/context"
)

// AppContext attaches a fresh RequestContext to every request so that
// services reading the catalog see one snapshot for the whole request. It
// runs after the ID middleware so the RequestContext carries both IDs.
func AppContext() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := appctx.WithRequestContext(r.Context(), appctx.New(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
