package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{DB: db}
	inventoriesHandler := &InventoriesHandler{DB: db}
	thingsHandler := &ThingsHandler{DB: db}
	adminHandler := &AdminHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: registration and login.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated session management.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Server and user info.
	mux.Handle("GET /api/serverinfo", authMW(http.HandlerFunc(usersHandler.ServerInfo)))
	mux.Handle("GET /api/userinfo", authMW(http.HandlerFunc(usersHandler.UserInfo)))

	// Inventories.
	mux.Handle("GET /api/inventories", authMW(http.HandlerFunc(inventoriesHandler.List)))
	mux.Handle("POST /api/inventories", authMW(http.HandlerFunc(inventoriesHandler.Create)))

	// Things. Update and delete are also reachable under their inventory;
	// the inventory segment is ignored there, only the thing id matters.
	mux.Handle("GET /api/inventories/{inventoryID}/things", authMW(http.HandlerFunc(thingsHandler.List)))
	mux.Handle("POST /api/inventories/{inventoryID}/things", authMW(http.HandlerFunc(thingsHandler.Create)))
	mux.Handle("GET /api/things/{id}", authMW(http.HandlerFunc(thingsHandler.Get)))
	mux.Handle("PUT /api/things/{id}", authMW(http.HandlerFunc(thingsHandler.Update)))
	mux.Handle("DELETE /api/things/{id}", authMW(http.HandlerFunc(thingsHandler.Delete)))
	mux.Handle("PUT /api/inventories/{inventoryID}/things/{id}", authMW(http.HandlerFunc(thingsHandler.Update)))
	mux.Handle("DELETE /api/inventories/{inventoryID}/things/{id}", authMW(http.HandlerFunc(thingsHandler.Delete)))
	mux.Handle("PUT /api/things/{id}/photo", authMW(http.HandlerFunc(thingsHandler.UploadPhoto)))
	mux.Handle("GET /api/things/{id}/photo", authMW(http.HandlerFunc(thingsHandler.GetPhoto)))

	// Aggregate statistics.
	mux.Handle("GET /api/admin/stats", authMW(http.HandlerFunc(adminHandler.Stats)))

	return mux
}
