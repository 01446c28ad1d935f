package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/selisih-berat/internal/app"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/ratelimit"
	"github.com/MKhiriev/selisih-berat/internal/utils"
)

// rateLimit applies limiter to each request, keyed by the authenticated
// username or, for anonymous requests, the client IP. A nil limiter lets
// everything through. Limiter failures are logged and the request is
// allowed.
func (h *Handler) rateLimit(limiter ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			decision, err := limiter.Allow(r.Context(), rateLimitKey(r))
			if err != nil {
				log.Err(err).Str("func", "*Handler.rateLimit").Msg("rate limiter unavailable, request allowed")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

			if !decision.Allowed {
				seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(max(seconds, 1)))
				log.Warn().Str("key", rateLimitKey(r)).Msg("rate limit exceeded")
				writeFailure(w, http.StatusTooManyRequests, app.MsgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rateLimitKey(r *http.Request) string {
	if claims, ok := utils.GetClaimsFromContext(r.Context()); ok && claims.Username != "" {
		return "user:" + claims.Username
	}
	return "ip:" + clientIP(r)
}

// clientIP strips the port from RemoteAddr. withRealIP has already replaced
// it with the forwarded address when a trusted proxy sent one.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
