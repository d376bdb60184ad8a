package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// DeviceHeader carries the client's device identifier. Every draft, session
// and setting is stored under that identifier.
const DeviceHeader = "X-Device-ID"

type scopeKey struct{}

// WithScope returns a copy of ctx carrying scope.
func WithScope(ctx context.Context, scope uuid.UUID) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// ScopeFrom returns the device scope stored by RequireDevice.
func ScopeFrom(ctx context.Context) (uuid.UUID, bool) {
	s, ok := ctx.Value(scopeKey{}).(uuid.UUID)
	return s, ok
}

// RequireDevice rejects requests without a valid X-Device-ID UUID with 400
// and stores the parsed scope in the request context.
func RequireDevice(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(DeviceHeader)
		scope, err := uuid.Parse(raw)
		if raw == "" || err != nil || scope == uuid.Nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{
					"code":    "missing_device",
					"message": DeviceHeader + " header must be a UUID",
				},
			})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithScope(r.Context(), scope)))
	})
}
