// Package correlationid carries a per-request correlation identifier through
// the context so that logs emitted anywhere in the request path can be tied
// together.
package correlationid

import "context"

// Header is the HTTP header used to propagate the correlation identifier.
const Header = "X-Correlation-ID"

type ctxKey struct{}

// WithContext returns a copy of ctx carrying the correlation id.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the correlation id from ctx.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok
}
