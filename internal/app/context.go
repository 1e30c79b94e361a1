package app

import "context"

type contextKey struct{}

// FromContext returns the App stored by WithApp, or nil.
func FromContext(ctx context.Context) *App {
	a, _ := ctx.Value(contextKey{}).(*App)
	return a
}

func WithApp(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}
