package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

func NewRequestID() string { return "req_" + uuid.NewString() }

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError emits the structured rejection envelope. The kind is one of the
// boundary failure classes (UNAUTHORIZED, SCHEMA_VIOLATION, PROCESSING_ERROR,
// or a transport-level code); message must never carry internal error traces.
func WriteError(w http.ResponseWriter, status int, kind, message string, details any) {
	resp := map[string]any{
		"request_id": NewRequestID(),
		"error": map[string]any{
			"kind": kind, "message": message, "details": details,
		},
	}
	WriteJSON(w, status, resp)
}
