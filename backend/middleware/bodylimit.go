// ABOUTME: Request body size limit middleware
// ABOUTME: Caps POST bodies so oversized sequences are rejected before decoding

package middleware

import "net/http"

// MaxBodyBytes is the default request body limit (1 MB).
const MaxBodyBytes int64 = 1 << 20

// LimitBody returns middleware that wraps the request body in http.MaxBytesReader.
// Reads past the limit fail, and decoders surface that as a bad request.
func LimitBody(limit int64) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next(w, r)
		}
	}
}
