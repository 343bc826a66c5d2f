// ABOUTME: HTTP handlers for the placement evaluation API
// ABOUTME: Holds shared dependencies and JSON response helpers

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/cache"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/config"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/metrics"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/services"
)

// Sample bounds applied when the handler runs without configuration
const (
	defaultMaxSampleRuns   = 10000
	defaultMaxSampleLength = 100
)

type Handler struct {
	cfg       *config.Config
	cache     *cache.Cache
	metrics   *metrics.Recorder
	evaluator *services.Evaluator
	tables    models.CapacityTables

	// The sampler owns an engine and a random stream, so runs are serialized
	samplerMu sync.Mutex
	sampler   *services.Sampler
}

// NewHandler wires the API over a capacity model. A nil model uses the reference
// scenario; cfg, cache and recorder are optional (for testing).
func NewHandler(cfg *config.Config, model *models.CapacityModel, c *cache.Cache, rec *metrics.Recorder) *Handler {
	if model == nil {
		model = models.NewReferenceModel()
	}

	return &Handler{
		cfg:       cfg,
		cache:     c,
		metrics:   rec,
		evaluator: services.NewEvaluator(model, c, rec),
		tables:    model.Tables(),
		sampler:   services.NewSampler(model, "api-sampler"),
	}
}

func (h *Handler) maxSampleRuns() int {
	if h.cfg != nil && h.cfg.MaxSampleRuns > 0 {
		return h.cfg.MaxSampleRuns
	}
	return defaultMaxSampleRuns
}

func (h *Handler) maxSampleLength() int {
	if h.cfg != nil && h.cfg.MaxSampleLength > 0 {
		return h.cfg.MaxSampleLength
	}
	return defaultMaxSampleLength
}

// writeJSON writes data as JSON with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response as JSON.
func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// writeErrorWithDetails writes an error response with additional details.
func (h *Handler) writeErrorWithDetails(w http.ResponseWriter, message, details string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error:   message,
		Details: details,
		Code:    code,
	})
}

// decodeJSON reads a JSON body into v, answering 413 or 400 on failure.
// It reports whether decoding succeeded.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		h.writeErrorWithDetails(w, "Invalid JSON", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// writeEvaluationError maps evaluator errors onto HTTP responses.
func (h *Handler) writeEvaluationError(w http.ResponseWriter, err error) {
	if errors.Is(err, models.ErrInvalidInput) {
		h.writeErrorWithDetails(w, "Invalid placement request",
			strings.Join(services.ValidationProblems(err), "; "), http.StatusBadRequest)
		return
	}
	slog.Error("Evaluation failed", "error", err)
	h.writeError(w, "Evaluation failed", http.StatusInternalServerError)
}
