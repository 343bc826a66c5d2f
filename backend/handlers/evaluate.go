// ABOUTME: HTTP handlers for placement evaluation and bottleneck analysis
// ABOUTME: Runs the constraint evaluator over a posted service/placement pair

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/middleware"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

// Evaluate places a service chain and returns the full constraint evaluation.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	result, cached, err := h.evaluator.Evaluate(req)
	if err != nil {
		h.writeEvaluationError(w, err)
		return
	}

	resp := models.EvaluationResponse{
		ID:         uuid.NewString(),
		Result:     result,
		Bottleneck: models.AnalyzePlacement(h.tables, result),
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			Cached:    cached,
		},
	}

	slog.Info("Placement evaluated",
		"request_id", middleware.RequestID(r),
		"evaluation_id", resp.ID,
		"service_length", result.ServiceLength,
		"feasible", result.Feasible(),
		"cached", cached,
	)

	h.writeJSON(w, http.StatusOK, resp)
}

// Bottleneck evaluates a placement and returns only the resource ranking.
func (h *Handler) Bottleneck(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	result, _, err := h.evaluator.Evaluate(req)
	if err != nil {
		h.writeEvaluationError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, models.AnalyzePlacement(h.tables, result))
}
