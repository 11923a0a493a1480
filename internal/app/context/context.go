// Package appctx provides request-scoped state for application services.
//
// A RequestContext memoizes reads for the lifetime of one request so that a
// handler touching the catalog several times sees one consistent snapshot,
// even if a reload swaps the live catalog halfway through:
//
//	rc := appctx.New(ctx)
//	ctx = appctx.WithRequestContext(ctx, rc)
//
//	cat, err := appctx.GetOrFetch(rc, "catalog", loadCatalog)
//
// Create one RequestContext per request; never share it between requests.
package appctx

import (
	"context"
	"errors"
	"fmt"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. The same key was used with two types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

type ctxKey struct{}

// RequestContext wraps a context.Context with a per-request memo cache.
// It is not safe for concurrent use; resolve shared values before fanning
// work out to goroutines.
type RequestContext struct {
	context.Context
	cache map[string]cacheEntry
}

// cacheEntry keeps errors too, so a failed fetch is not retried within the
// same request.
type cacheEntry struct {
	value any
	err   error
}

// New creates a RequestContext with an empty cache.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the RequestContext stored by WithRequestContext, or nil
// when the call did not originate from a request (CLI, startup, tests).
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(ctxKey{}).(*RequestContext)
	return rc
}

// GetOrFetch returns the cached value for key, or calls fetchFn and caches
// its result. fetchFn receives rc's embedded context.
//
// The same key must always be used with the same type T.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.cache[key]; ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Forget drops the cached entry for key so the next GetOrFetch fetches again.
func (rc *RequestContext) Forget(key string) {
	delete(rc.cache, key)
}

// DataProvider binds a cache key to its fetch function.
type DataProvider[T any] struct {
	key     string
	fetchFn func(ctx context.Context) (T, error)
}

// NewDataProvider creates a DataProvider with the given cache key and fetch
// function.
func NewDataProvider[T any](key string, fetchFn func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetchFn: fetchFn}
}

// Key returns the cache key the provider memoizes under.
func (p *DataProvider[T]) Key() string { return p.key }

// Get returns the memoized value from ctx's RequestContext. Without a
// RequestContext in ctx it fetches directly.
func (p *DataProvider[T]) Get(ctx context.Context) (T, error) {
	rc := FromContext(ctx)
	if rc == nil {
		return p.fetchFn(ctx)
	}
	return GetOrFetch(rc, p.key, p.fetchFn)
}
