package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"uptimestatus/app/internal/ratelimit"
	"uptimestatus/app/internal/security"
)

// Gate applies the gateway request pipeline to API routes, in order:
// CORS origin check (403), rate limit (429), API key (401). Every
// rejection uses the uniform error envelope.
func Gate(cors security.CORSPolicy, limiter *ratelimit.Limiter, keys security.APIKeyPolicy) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cors.Apply(w, r) {
				writeError(w, http.StatusForbidden, "不允许的源")
				return
			}

			if !limiter.Allow(security.ClientIP(r)) {
				writeError(w, http.StatusTooManyRequests, limiter.ErrorMessage())
				return
			}

			if ok, msg := keys.Check(r.Header.Get("X-API-Key")); !ok {
				writeError(w, http.StatusUnauthorized, msg)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CORSOnly applies just the origin check, for routes outside the rate
// limited API surface (the documentation root).
func CORSOnly(cors security.CORSPolicy) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cors.Apply(w, r) {
				writeError(w, http.StatusForbidden, "不允许的源")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HandlePreflight answers OPTIONS requests on any path: 204 with the
// CORS headers, or a bare 403 for disallowed origins.
func HandlePreflight(cors security.CORSPolicy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !cors.Apply(w, r) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
