package api

import (
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"net/http"

	"github.com/stuffrapp/stuffr/internal/access"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("error encoding response: %v", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"message": message})
}

// accessError translates an access-layer error into a response. The mapping
// is fixed: not-found 404, permission 403, invalid data 400. Anything else is
// an unclassified storage failure and stays a 500.
func accessError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, access.ErrNotFound):
		jsonError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, access.ErrPermission):
		jsonError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, access.ErrInvalidData):
		jsonError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("unclassified error", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
