// ABOUTME: JSON error writer for middleware rejections
// ABOUTME: Emits the same error envelope the handlers use

package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

// writeJSONError rejects a request before it reaches a handler
func writeJSONError(w http.ResponseWriter, message, details string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:   message,
		Details: details,
		Code:    code,
	})
}
