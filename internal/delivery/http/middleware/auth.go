package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	h "weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/domain"
)

// RequireAdmin gates operator-only endpoints. Two credentials are accepted:
// an admin-scoped Bearer token, or the shared cron key in X-Cron-Key for
// schedulers that cannot perform a login round trip. An empty configured
// cron key disables the header path.
func RequireAdmin(verifier domain.TokenVerifier, cronKey string, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if key := r.Header.Get("X-Cron-Key"); key != "" && cronKey != "" {
				if subtle.ConstantTimeCompare([]byte(key), []byte(cronKey)) == 1 {
					next(w, r)
					return
				}
				logger.Warn("rejected cron key", "path", r.URL.Path)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
				return
			}

			auth := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing credentials")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			_, scope, err := verifier.Verify(token)
			if err != nil || scope != domain.TokenScopeAdmin {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r)
		}
	}
}

// BearerToken extracts the Bearer token from the Authorization header,
// returning "" when absent or malformed.
func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
