// Package requestid carries the per-request correlation identifier through
// context. The identifier is set once by the request-ID middleware and read
// by the logger and the error responder.
package requestid

import "context"

type ctxKey struct{}

// Undefined is returned by FromContext when no request ID was ever set,
// e.g. for failures raised outside the middleware chain. The literal value
// is part of the error-envelope contract.
const Undefined = "Request ID undefined"

// NewContext returns a copy of ctx carrying the given request ID.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request ID stored in ctx, or Undefined when absent.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return id
	}
	return Undefined
}
