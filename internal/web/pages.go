package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/stuffrapp/stuffr/internal/access"
	"github.com/stuffrapp/stuffr/internal/model"
)

// MainPage handles GET /simple/.
func (s *Server) MainPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	s.Templates.Render(w, "main.html", &PageData{Title: "Home", User: claims})
}

// InventoriesPage handles GET /simple/inventories/.
func (s *Server) InventoriesPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	inventories, err := access.ListInventories(r.Context(), s.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to list inventories", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "inventories.html", &struct {
		PageData
		Inventories []model.Inventory
	}{
		PageData:    PageData{Title: "Inventories", User: claims},
		Inventories: inventories,
	})
}

// ThingsPage handles GET /simple/inventories/{inventoryID}/. A missing
// inventory and one owned by another user are both answered with 403, so
// the page does not reveal which ids exist.
func (s *Server) ThingsPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	inventoryID, err := strconv.ParseInt(r.PathValue("inventoryID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	things, err := access.ListThings(r.Context(), s.DB, inventoryID, claims.UserID)
	if err != nil {
		if errors.Is(err, access.ErrNotFound) || errors.Is(err, access.ErrPermission) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		slog.Error("failed to list things", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "things.html", &struct {
		PageData
		Things []model.Thing
	}{
		PageData: PageData{Title: "Things", User: claims},
		Things:   things,
	})
}

// ThingDetailPage handles GET /simple/inventories/{inventoryID}/{id}/.
func (s *Server) ThingDetailPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	inventoryID, err := strconv.ParseInt(r.PathValue("inventoryID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	thingID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	thing, err := access.GetThing(r.Context(), s.DB, thingID, claims.UserID)
	if err != nil {
		if errors.Is(err, access.ErrNotFound) || errors.Is(err, access.ErrPermission) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		slog.Error("failed to get thing", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// The thing id is correct but the path's inventory id is not.
	if inventoryID != thing.InventoryID {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.Templates.Render(w, "thing_details.html", &struct {
		PageData
		Thing *model.Thing
	}{
		PageData: PageData{Title: thing.Name, User: claims},
		Thing:    thing,
	})
}
