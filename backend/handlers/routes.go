// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method    string           // HTTP method (GET, POST, etc.)
	Path      string           // URL path (e.g., "/api/v1/health")
	Handler   http.HandlerFunc // Handler function
	Expensive bool             // rate limited per client when limiting is enabled
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health & Capacity
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},
		{Method: http.MethodGet, Path: "/api/v1/capacity", Handler: h.Capacity},

		// Evaluation
		{Method: http.MethodPost, Path: "/api/v1/evaluate", Handler: h.Evaluate},
		{Method: http.MethodPost, Path: "/api/v1/bottleneck", Handler: h.Bottleneck},
		{Method: http.MethodPost, Path: "/api/v1/sample", Handler: h.Sample, Expensive: true},

		// Documentation
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec},
	}
}
