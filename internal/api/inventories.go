package api

import (
	"database/sql"
	"net/http"

	"github.com/stuffrapp/stuffr/internal/access"
)

// InventoriesHandler handles inventory endpoints.
type InventoriesHandler struct {
	DB *sql.DB
}

// List handles GET /api/inventories, returning the acting user's inventories.
func (h *InventoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	inventories, err := access.ListInventories(r.Context(), h.DB, claims.UserID)
	if err != nil {
		accessError(w, err)
		return
	}

	views := make([]map[string]any, 0, len(inventories))
	for i := range inventories {
		views = append(views, access.InventoryFields.ProjectClient(inventories[i].AsMap()))
	}
	jsonResponse(w, http.StatusOK, views)
}

// Create handles POST /api/inventories. The response echoes only the
// server-assigned fields.
func (h *InventoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var data any
	if err := decodeJSON(r, &data); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inv, err := access.CreateInventory(r.Context(), h.DB, data, claims.UserID)
	if err != nil {
		accessError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, access.InventoryFields.ProjectManaged(inv.AsMap()))
}
