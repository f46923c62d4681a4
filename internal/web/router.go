package web

import (
	"database/sql"
	"net/http"

	webembed "github.com/stuffrapp/stuffr/web"
)

// NewRouter creates the simple interface router with all page routes
// registered. All paths live under /simple so the router can be mounted
// next to the JSON API.
func NewRouter(db *sql.DB, jwtSecret string) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Templates: templates,
		JWTSecret: jwtSecret,
	}

	mux := http.NewServeMux()
	cookieAuth := CookieAuthMiddleware(jwtSecret, db)

	// Static assets.
	mux.Handle("GET /simple/static/", http.StripPrefix("/simple/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public routes.
	mux.HandleFunc("GET /simple/login", s.LoginPage)
	mux.HandleFunc("POST /simple/login", s.LoginSubmit)
	mux.HandleFunc("POST /simple/logout", s.Logout)

	// Authenticated read-only pages.
	mux.Handle("GET /simple/{$}", cookieAuth(http.HandlerFunc(s.MainPage)))
	mux.Handle("GET /simple/inventories/{$}", cookieAuth(http.HandlerFunc(s.InventoriesPage)))
	mux.Handle("GET /simple/inventories/{inventoryID}/{$}", cookieAuth(http.HandlerFunc(s.ThingsPage)))
	mux.Handle("GET /simple/inventories/{inventoryID}/{id}/{$}", cookieAuth(http.HandlerFunc(s.ThingDetailPage)))

	return mux, nil
}
