package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tbruun/voyage-log/backend/internal/domain"
)

// writeJSON serializes v as the response body with the given status.
// Encoding failures after the header has been written can only be logged by
// the caller's middleware; the status is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the generic single-message error shape {"error": msg}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeFieldErrors writes the field-keyed validation error shape
// {"errors": {field: message}} — the same shape the client core produces, so
// the form can render server-rejected fields inline.
func writeFieldErrors(w http.ResponseWriter, fe domain.FieldErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]domain.FieldErrors{"errors": fe})
}

// methodNotAllowed returns a handler that rejects the request with 405, a
// plain-text body, and an Allow header enumerating the permitted methods.
func methodNotAllowed(allowed ...string) http.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte("Method " + r.Method + " Not Allowed"))
	}
}
