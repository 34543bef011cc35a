package middleware

import (
	"net"
	"net/http"

	"gorgonzola/pkg/auth"
	pkgerrors "gorgonzola/pkg/errors"

	"go.uber.org/zap"
)

// RequireAdminSecret rejects requests whose X-Admin-Secret header does not
// match the configured secret.
func RequireAdminSecret(secret *auth.AdminSecret, errorHandler *pkgerrors.ErrorHandler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !secret.Verify(r.Header.Get(auth.AdminSecretHeader)) {
				errorHandler.HandleStatus(w, r, http.StatusForbidden, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit limits requests per client IP, keyed on RemoteAddr. A nil
// limiter disables it.
func RateLimit(limiter *auth.IPRateLimiter, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			allowed, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				// fail open
				logger.Warn("Rate limiter error", zap.String("ip", ip), zap.Error(err))
			} else if !allowed {
				errorHandler.Handle(w, r, pkgerrors.NewRateLimitError(limiter.Limit(), "minute"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
