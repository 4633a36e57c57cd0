package middleware

import (
	"net"
	"net/http"

	"github.com/rogerio-castellano/storefront/internal/http/ban"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	"go.uber.org/zap"
)

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit rejects banned clients with 403 and clients over their rate with
// 429. Every 429 counts as a strike towards a ban.
func RateLimit(limiter *rl.Limiter, guard *ban.Guard, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			banned, err := guard.IsBanned(r.Context(), ip)
			if err != nil {
				logger.Error("ban lookup failed", zap.String("ip", ip), zap.Error(err))
			}
			if banned {
				http.Error(w, "too many requests, temporarily banned", http.StatusForbidden)
				return
			}

			if !limiter.Allow(ip) {
				if _, err := guard.Strike(r.Context(), ip, r.URL.Path); err != nil {
					logger.Error("failed to record strike", zap.String("ip", ip), zap.Error(err))
				}
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
