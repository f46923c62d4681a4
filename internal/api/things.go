package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/stuffrapp/stuffr/internal/access"
	"github.com/stuffrapp/stuffr/internal/imaging"
	"github.com/stuffrapp/stuffr/internal/store"
)

// ThingsHandler handles thing endpoints.
type ThingsHandler struct {
	DB *sql.DB
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	return id, err == nil
}

// List handles GET /api/inventories/{inventoryID}/things. Soft-deleted
// things are not included.
func (h *ThingsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	inventoryID, ok := pathID(r, "inventoryID")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid inventory id")
		return
	}

	things, err := access.ListThings(r.Context(), h.DB, inventoryID, claims.UserID)
	if err != nil {
		accessError(w, err)
		return
	}

	views := make([]map[string]any, 0, len(things))
	for i := range things {
		views = append(views, access.ThingFields.ProjectClient(things[i].AsMap()))
	}
	jsonResponse(w, http.StatusOK, views)
}

// Create handles POST /api/inventories/{inventoryID}/things. The response
// echoes only the server-assigned fields.
func (h *ThingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	inventoryID, ok := pathID(r, "inventoryID")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid inventory id")
		return
	}

	var data any
	if err := decodeJSON(r, &data); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	thing, err := access.CreateThing(r.Context(), h.DB, data, inventoryID, claims.UserID)
	if err != nil {
		accessError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, access.ThingFields.ProjectManaged(thing.AsMap()))
}

// Get handles GET /api/things/{id}. Unlike listings, the detail view returns
// soft-deleted things, deletion timestamp included.
func (h *ThingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid thing id")
		return
	}

	thing, err := access.GetThing(r.Context(), h.DB, id, claims.UserID)
	if err != nil {
		accessError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, access.ThingFields.ProjectClient(thing.AsMap()))
}

// Update handles PUT /api/things/{id}, returning the fields actually written
// plus the refreshed modification timestamp.
func (h *ThingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid thing id")
		return
	}

	var data any
	if err := decodeJSON(r, &data); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	changed, err := access.UpdateThing(r.Context(), h.DB, id, data, claims.UserID)
	if err != nil {
		accessError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, changed)
}

// Delete handles DELETE /api/things/{id}.
func (h *ThingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid thing id")
		return
	}

	if err := access.DeleteThing(r.Context(), h.DB, id, claims.UserID); err != nil {
		accessError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadPhoto handles PUT /api/things/{id}/photo.
func (h *ThingsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid thing id")
		return
	}

	// Ownership check before touching the upload.
	if _, err := access.GetThing(r.Context(), h.DB, id, claims.UserID); err != nil {
		accessError(w, err)
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	photo, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetThingImage(r.Context(), h.DB, id, photo.Data, photo.MIME); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save photo")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "photo uploaded"})
}

// GetPhoto handles GET /api/things/{id}/photo.
func (h *ThingsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid thing id")
		return
	}

	if _, err := access.GetThing(r.Context(), h.DB, id, claims.UserID); err != nil {
		accessError(w, err)
		return
	}

	data, mime, err := store.GetThingImage(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get photo")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no photo")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.Write(data)
}
