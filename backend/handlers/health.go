// ABOUTME: HTTP handlers for health and capacity endpoints
// ABOUTME: Reports service status and the read-only capacity tables

package handlers

import "net/http"

// Health returns API health status including model dimensions and cache stats.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"status":    "ok",
		"nodes":     h.tables.NumNodes(),
		"vnf_types": h.tables.NumVNFTypes(),
		"metrics":   h.metrics != nil,
	}

	if h.cache != nil {
		resp["cache"] = h.cache.Stats()
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// Capacity returns the node, link and VNF tables the evaluator checks against.
func (h *Handler) Capacity(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.tables)
}
