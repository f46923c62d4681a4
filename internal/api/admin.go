package api

import (
	"database/sql"
	"net/http"

	"github.com/stuffrapp/stuffr/internal/access"
)

// AdminHandler handles aggregate statistics endpoints.
type AdminHandler struct {
	DB *sql.DB
}

type statsResponse struct {
	NumUsers       int64 `json:"numUsers"`
	NumInventories int64 `json:"numInventories"`
	NumThings      int64 `json:"numThings"`
}

// Stats handles GET /api/admin/stats. Counts include soft-deleted things.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	users, err := access.CountUsers(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to count users")
		return
	}
	inventories, err := access.CountInventories(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to count inventories")
		return
	}
	things, err := access.CountThings(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to count things")
		return
	}

	jsonResponse(w, http.StatusOK, statsResponse{
		NumUsers:       users,
		NumInventories: inventories,
		NumThings:      things,
	})
}
