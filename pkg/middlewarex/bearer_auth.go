package middlewarex

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"passmeter/pkg/httpx/reply"
)

const bearerPrefix = "Bearer "

// BearerAuth rejects requests whose Authorization header does not carry
// token. An empty token turns the check off.
func BearerAuth(token string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			presented, ok := strings.CutPrefix(header, bearerPrefix)
			if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				logger(r.Context()).Warn("bearer token rejected")
				reply.Unauthorized(r.Context(), w, "missing or invalid bearer token")

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
