package middleware

import (
	"context"
	"net/http"

	"github.com/mssola/useragent"
)

type contextKeyClientDevice struct{}

// GetClientDevice retrieves the parsed client descriptor from the context.
func GetClientDevice(ctx context.Context) string {
	if device, ok := ctx.Value(contextKeyClientDevice{}).(string); ok {
		return device
	}
	return ""
}

// WithClientDevice injects a client descriptor into a context.
// Useful for service unit tests that don't run the full HTTP middleware chain.
func WithClientDevice(ctx context.Context, device string) context.Context {
	return context.WithValue(ctx, contextKeyClientDevice{}, device)
}

// ClientDevice condenses the User-Agent header into a "browser/version on os"
// descriptor for request logs. Quiz submissions come from both the extension
// popup and the web onboarding flow; the descriptor tells them apart.
func ClientDevice(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("User-Agent")
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}
		ua := useragent.New(raw)
		name, version := ua.Browser()
		descriptor := name + "/" + version
		if os := ua.OS(); os != "" {
			descriptor += " on " + os
		}
		ctx := WithClientDevice(r.Context(), descriptor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
