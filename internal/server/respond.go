// ABOUTME: JSON response and request helpers shared by the HTTP handlers
// ABOUTME: Provides the success/message envelope used across the API

package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// sendJSON writes v as the JSON response body with the given status.
func (s *Server) sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// sendError writes the standard error envelope.
func (s *Server) sendError(w http.ResponseWriter, status int, message string) {
	s.sendJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

// decodeJSON decodes a request body into v.
func decodeJSON(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return errors.New("invalid JSON body")
	}
	return nil
}
