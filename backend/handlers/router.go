// ABOUTME: Builds the HTTP mux from the route table and middleware stack
// ABOUTME: Shared by the server entry point and end-to-end tests

package handlers

import (
	"net/http"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/middleware"
)

// RouterOptions selects the optional parts of the middleware stack.
type RouterOptions struct {
	AllowedOrigins []string
	SampleLimiter  *middleware.RateLimiter // nil disables rate limiting
	MetricsHandler http.Handler            // nil leaves /metrics unregistered
}

// NewServeMux registers every route with logging, CORS and the body limit.
// Expensive routes are also rate limited.
func (h *Handler) NewServeMux(opts RouterOptions) *http.ServeMux {
	mux := http.NewServeMux()
	cors := middleware.CORSWithConfig(opts.AllowedOrigins)

	for _, route := range h.Routes() {
		chain := []func(http.HandlerFunc) http.HandlerFunc{
			middleware.LogRequest,
			cors,
			middleware.LimitBody(middleware.MaxBodyBytes),
		}
		if route.Expensive {
			chain = append(chain, middleware.RateLimit(opts.SampleLimiter))
		}
		mux.HandleFunc(route.Method+" "+route.Path, middleware.Chain(route.Handler, chain...))
		// Preflight never reaches the handler
		mux.HandleFunc(http.MethodOptions+" "+route.Path, middleware.Chain(route.Handler, middleware.LogRequest, cors))
	}

	if opts.MetricsHandler != nil {
		mux.Handle("GET /metrics", opts.MetricsHandler)
	}
	return mux
}
