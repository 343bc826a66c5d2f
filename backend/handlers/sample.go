// ABOUTME: HTTP handler for the random placement baseline
// ABOUTME: Summarizes how often random placements violate each constraint

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

const defaultSampleRuns = 1000

// Sample evaluates random service chains on random nodes. Runs defaults to 1000
// and service_length to the number of VNF types.
func (h *Handler) Sample(w http.ResponseWriter, r *http.Request) {
	var req models.SampleRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if req.Runs == 0 {
		req.Runs = defaultSampleRuns
	}
	if req.ServiceLength == 0 {
		req.ServiceLength = h.tables.NumVNFTypes()
	}

	if maxRuns := h.maxSampleRuns(); req.Runs < 0 || req.Runs > maxRuns {
		h.writeErrorWithDetails(w, "Invalid sample request",
			fmt.Sprintf("runs must be between 1 and %d, got %d", maxRuns, req.Runs), http.StatusBadRequest)
		return
	}
	if maxLength := h.maxSampleLength(); req.ServiceLength < 0 || req.ServiceLength > maxLength {
		h.writeErrorWithDetails(w, "Invalid sample request",
			fmt.Sprintf("service_length must be between 1 and %d, got %d", maxLength, req.ServiceLength), http.StatusBadRequest)
		return
	}

	summary, err := h.runSampler(req.Runs, req.ServiceLength)
	if err != nil {
		h.writeEvaluationError(w, err)
		return
	}

	slog.Info("Sample completed", "runs", summary.Runs, "feasible_ratio", summary.FeasibleRatio)
	h.writeJSON(w, http.StatusOK, summary)
}

// runSampler serializes access to the shared sampler
func (h *Handler) runSampler(runs, length int) (models.SampleSummary, error) {
	h.samplerMu.Lock()
	defer h.samplerMu.Unlock()
	return h.sampler.Run(runs, length)
}
