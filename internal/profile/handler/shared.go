package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "clauseguard/pkg/domain-errors"
)

// errorEnvelope is the JSON error shape. Validation failures carry the full
// violation list so the quiz UI can mark every field at once.
type errorEnvelope struct {
	Error      string                   `json:"error"`
	Message    string                   `json:"message,omitempty"`
	Violations []dErrors.FieldViolation `json:"violations,omitempty"`
}

// WriteError centralizes domain error translation to HTTP responses so every
// endpoint returns a consistent JSON error envelope.
func WriteError(w http.ResponseWriter, err error) {
	var de *dErrors.Error
	status := http.StatusInternalServerError
	envelope := errorEnvelope{Error: string(dErrors.CodeInternal)}
	if errors.As(err, &de) {
		status = dErrors.ToHTTPStatus(de.Code)
		envelope.Error = string(de.Code)
		envelope.Message = de.Message
		envelope.Violations = de.Fields
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope)
}

// WriteJSON writes a JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
