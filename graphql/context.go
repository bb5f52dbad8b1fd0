package graphql

import (
	"context"

	"bundle-inventory.GO/service/bundle"
	"bundle-inventory.GO/service/inventory"
)

// Services are the domain services resolvers read from.
type Services struct {
	Bundles     *bundle.Service
	SourceItems *inventory.Service
}

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const ctxKeyServices contextKey = "services"

// WithServices attaches s to ctx for _extension resolvers.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, ctxKeyServices, s)
}

// ServicesFromContext returns the services attached by WithServices, or nil.
func ServicesFromContext(ctx context.Context) *Services {
	s, _ := ctx.Value(ctxKeyServices).(*Services)
	return s
}
