package graph

import "context"

type tokenKey struct{}

// WithToken stores the caller's bearer token for the duration of the request.
// The transport layer puts it here; only the me query reads it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	if v := ctx.Value(tokenKey{}); v != nil {
		if t, ok := v.(string); ok {
			return t
		}
	}
	return ""
}
