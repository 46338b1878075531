package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bukness/bukness-api/internal/redact"
)

// ErrorResponse defines the standard JSON error response structure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"-"` // Not serialized to JSON, used for logging
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
// A nil data value is written as a JSON null body, which some lookup routes
// use to report a missing entity without an error status.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithText writes a plain-text response with the given status code.
// The delete and conflict routes speak text, not JSON.
func RespondWithText(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(message)); err != nil {
		slog.Error("failed to write text response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code
// and message. It also sets the TraceID from the request context if
// available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   message,
		Code:    status,
		TraceID: traceID,
	})
}

// RespondWithStoreFailure forwards a persistence-layer failure to the client
// as a 500 with the raw error message, matching the API's documented
// StoreFailure contract. The log copy of the error is redacted so connection
// strings and credentials never reach log sinks.
func RespondWithStoreFailure(w http.ResponseWriter, r *http.Request, err error) {
	traceID := GetTraceID(r.Context())

	slog.Error("store operation failed",
		"error", redact.Error(err),
		"error_type", fmt.Sprintf("%T", err),
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithText(w, r, http.StatusInternalServerError, "Error: "+err.Error())
}
