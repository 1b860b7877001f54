// Package respond provides the JSON response helpers shared by all handlers.
package respond

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a uniform JSON error body.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteErrorDetails writes an error body carrying diagnostic details.
func WriteErrorDetails(w http.ResponseWriter, status int, message, details string) {
	WriteJSON(w, status, map[string]string{"error": message, "details": details})
}
