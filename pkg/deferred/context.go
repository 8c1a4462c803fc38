package deferred

import (
	"context"
	"net/http"
)

type registryContextKey struct{}

// NewContext stores registry in ctx.
func NewContext(ctx context.Context, registry *Registry) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, registryContextKey{}, registry)
}

// FromContext returns the registry stored in ctx.
func FromContext(ctx context.Context) (*Registry, bool) {
	if ctx == nil {
		return nil, false
	}
	registry, ok := ctx.Value(registryContextKey{}).(*Registry)
	return registry, ok && registry != nil
}

// Middleware binds a fresh registry to every request so deferred icons are
// deduplicated per response and never shared between concurrent requests.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(r.Context(), New())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
