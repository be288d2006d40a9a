package idempotency

import "context"

type keyContextKey struct{}

// WithKey returns a context carrying the idempotency key of the operation being executed.
func WithKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, keyContextKey{}, key)
}

// KeyFromContext returns the idempotency key set by the dispatcher, or "".
// Handlers use it to stamp the key on the rows they write.
func KeyFromContext(ctx context.Context) string {
	key, _ := ctx.Value(keyContextKey{}).(string)
	return key
}
