package telemetry

import "context"

type callIDKey struct{}

// WithCallID returns a context carrying an invocation correlation ID.
func WithCallID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, callIDKey{}, id)
}

// CallIDFromContext returns the correlation ID set by WithCallID, if any.
func CallIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(callIDKey{}).(string)
	return id, ok && id != ""
}
