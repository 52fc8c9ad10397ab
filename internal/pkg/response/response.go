package response

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform failure body. It deliberately carries no
// diagnostic detail; that stays in the logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already out; nothing more can be done here.
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// Error writes an error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// Success writes a 200 OK response.
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}
