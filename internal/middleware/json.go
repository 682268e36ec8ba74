package middleware

import (
	"encoding/json"
	"net/http"

	"retreat-backoffice/internal/model"
)

// writeJSON emits an envelope response from middleware. Denials, panics,
// and rate limits all go through here so their wire shape matches the
// handlers'.
func writeJSON(w http.ResponseWriter, status int, resp model.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
