package api

import (
	"database/sql"
	"net/http"

	"github.com/stuffrapp/stuffr/internal/access"
	"github.com/stuffrapp/stuffr/internal/store"
)

// Version reported by the serverinfo endpoint.
const Version = "0.1.0"

// UsersHandler handles user information endpoints.
type UsersHandler struct {
	DB *sql.DB
}

// ServerInfo handles GET /api/serverinfo.
func (h *UsersHandler) ServerInfo(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"version": Version})
}

// UserInfo handles GET /api/userinfo, returning the acting user's
// client-visible fields.
func (h *UsersHandler) UserInfo(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	user, err := store.GetUser(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if user == nil {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}

	jsonResponse(w, http.StatusOK, access.UserFields.ProjectClient(user.AsMap()))
}
