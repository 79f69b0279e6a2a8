package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}

// WriteErrorDetails writes an error response carrying the upstream response
// body verbatim under "details".
func WriteErrorDetails(w http.ResponseWriter, status int, message string, details json.RawMessage, logger *slog.Logger) {
	WriteJSON(w, status, map[string]interface{}{
		"error":   message,
		"details": details,
	}, logger)
}

// WriteText writes a plain-text response
func WriteText(w http.ResponseWriter, status int, body string, logger *slog.Logger) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)

	if _, err := w.Write([]byte(body)); err != nil {
		logger.Error("failed to write response", "error", err)
	}
}
