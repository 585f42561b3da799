package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// CORS returns middleware that reflects allowed origins and answers
// preflight requests. Origins outside the allow-list receive no CORS
// headers; the browser blocks those responses client-side.
func CORS(allowedOrigins []string) mux.MiddlewareFunc {
	originSet := make(map[string]bool, len(allowedOrigins))
	allowAll := false
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		originSet[strings.TrimRight(o, "/")] = true
	}

	const methods = "GET, POST, PUT, DELETE, OPTIONS"
	const headers = "Content-Type, Authorization, X-Requested-With"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				allowed := allowAll || originSet[strings.TrimRight(origin, "/")]
				if allowed {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Methods", methods)
					w.Header().Set("Access-Control-Allow-Headers", headers)
					if !allowAll {
						// Credentials are refused by browsers with a
						// wildcard origin.
						w.Header().Set("Access-Control-Allow-Credentials", "true")
					}
					w.Header().Add("Vary", "Origin")
				} else if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusForbidden)
					return
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
