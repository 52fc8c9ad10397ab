package middleware

import (
	"net"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/spiritquiz/backend/internal/pkg/response"
)

const rateLimitMessage = "Too many quiz attempts, please try again later."

// RateLimit caps requests per client IP over a fixed window. Counters live
// in an expiring in-memory cache; nothing survives a restart, which is fine
// for an abuse brake.
func RateLimit(window time.Duration, maxRequests int, logger *zap.Logger) func(next http.Handler) http.Handler {
	counters := cache.New(window, 2*window)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			// Add only succeeds for the first hit, anchoring the window there.
			_ = counters.Add(key, int64(0), window)
			count, err := counters.IncrementInt64(key, 1)
			if err != nil {
				// Entry expired between Add and Increment; start a new window.
				counters.Set(key, int64(1), window)
				count = 1
			}

			if int(count) > maxRequests {
				logger.Warn("rate limit exceeded",
					zap.String("client_ip", key),
					zap.Int64("count", count),
				)
				response.Error(w, http.StatusTooManyRequests, rateLimitMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port when present; behind RealIP the RemoteAddr may
// already be a bare IP.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
