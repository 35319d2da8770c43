package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON error body: {"error": "<message>"}.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes data. Success bodies are the bare entity or array.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes statusCode with an ErrorResponse body. Messages are
// passed through as-is; store errors are not translated or sanitized.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}
