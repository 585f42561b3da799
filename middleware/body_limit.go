package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// BodyLimit caps request bodies at maxBytes via http.MaxBytesReader,
// which plays well with json.NewDecoder and multipart parsing alike.
func BodyLimit(maxBytes int64) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// BodyLimitHandler overrides the body cap on a single route, e.g. the
// media upload endpoint which needs more headroom than the default.
func BodyLimitHandler(maxBytes int64, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		next(w, r)
	}
}
