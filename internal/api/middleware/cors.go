package middleware

import (
	"net/http"
	"os"
	"strings"
)

// Methods used by the reservation routes and the GraphQL endpoint.
// PATCH is the cancel route.
const (
	corsAllowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, " + RequestIDHeader
)

// corsPolicy is the set of browser origins allowed to call the API. An empty
// set allows any origin.
type corsPolicy struct {
	origins map[string]struct{}
}

// newCORSPolicy builds a policy from a comma separated ALLOWED_ORIGINS value
func newCORSPolicy(raw string) corsPolicy {
	p := corsPolicy{origins: map[string]struct{}{}}
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			return corsPolicy{}
		}
		if origin != "" {
			p.origins[origin] = struct{}{}
		}
	}
	if len(p.origins) == 0 {
		return corsPolicy{}
	}
	return p
}

// allowOrigin returns the Access-Control-Allow-Origin value for origin, or ""
// when the origin is not allowed.
func (p corsPolicy) allowOrigin(origin string) string {
	if p.origins == nil {
		return "*"
	}
	if _, ok := p.origins[origin]; ok {
		return origin
	}
	return ""
}

func (p corsPolicy) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		if origin := r.Header.Get("Origin"); origin != "" {
			if allowed := p.allowOrigin(origin); allowed != "" {
				h.Set("Access-Control-Allow-Origin", allowed)
				if allowed != "*" {
					h.Add("Vary", "Origin")
				}
			}
		}
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		h.Set("Access-Control-Expose-Headers", RequestIDHeader)

		// Preflights never reach the routes
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CORSMiddleware applies the ALLOWED_ORIGINS policy (any origin when unset)
// to both servers.
func CORSMiddleware(next http.Handler) http.Handler {
	return newCORSPolicy(os.Getenv("ALLOWED_ORIGINS")).wrap(next)
}
