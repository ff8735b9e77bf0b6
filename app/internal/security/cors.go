package security

import "net/http"

// CORSPolicy decides which origins may call the public API.
type CORSPolicy struct {
	AllowedOrigins []string
}

// Headers returns the CORS response headers for a request origin, or
// false when the origin is not allowed. A wildcard entry allows every
// origin; a configured allow-list echoes the matching origin back.
func (p CORSPolicy) Headers(origin string) (map[string]string, bool) {
	allowOrigin := "*"

	if !p.wildcard() {
		if !p.contains(origin) {
			return nil, false
		}
		allowOrigin = origin
	}

	return map[string]string{
		"Access-Control-Allow-Origin":  allowOrigin,
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, X-API-Key",
		"Access-Control-Max-Age":       "86400",
	}, true
}

// Apply writes the policy headers for the request's origin onto w and
// reports whether the origin is allowed.
func (p CORSPolicy) Apply(w http.ResponseWriter, r *http.Request) bool {
	headers, ok := p.Headers(r.Header.Get("Origin"))
	if !ok {
		return false
	}
	for k, v := range headers {
		w.Header().Set(k, v)
	}
	return true
}

func (p CORSPolicy) wildcard() bool {
	return p.contains("*")
}

func (p CORSPolicy) contains(origin string) bool {
	for _, o := range p.AllowedOrigins {
		if o == origin {
			return true
		}
	}
	return false
}
