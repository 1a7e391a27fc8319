package graph

import "context"

type ctxKey int

const tokenKey ctxKey = iota

// WithToken stores the caller's bearer credential on the request context.
// The transport layer forwards the Authorization header value verbatim.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFrom returns the bearer credential for the request, or "" when the
// caller sent none.
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
