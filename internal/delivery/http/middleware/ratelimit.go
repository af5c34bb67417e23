package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	h "weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/ratelimit"
)

// RateLimit bounds an action per client. Limited requests get a 429 with a
// Retry-After header and never reach the handler.
func RateLimit(limiter *ratelimit.Limiter, action string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			res := limiter.Check(action, ClientIP(r))
			if res.Limited {
				w.Header().Set("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())))
				h.WriteJSONError(w, http.StatusTooManyRequests, h.ErrCodeTooManyRequests, "too many requests, try again later")
				return
			}
			next(w, r)
		}
	}
}

// ClientIP identifies the caller for rate limiting: the first hop in
// X-Forwarded-For when present, else the RemoteAddr host.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
