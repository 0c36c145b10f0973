package middleware

import (
	"log/slog"
	"net/http"

	"clauseguard/pkg/platform/secrets"
)

// RequireServiceKey guards service-to-service endpoints (batch recompute after
// a weight table rollout) behind a shared key presented in X-Service-Key. Only
// the bcrypt hash of the key is configured on this side.
func RequireServiceKey(keyHash string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Service-Key")
			if key == "" || secrets.Verify(key, keyHash) != nil {
				logger.WarnContext(r.Context(), "rejected service key",
					"path", r.URL.Path,
					"request_id", GetRequestID(r.Context()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"forbidden"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
