package web

import (
	"log/slog"
	"net"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/stuffrapp/stuffr/internal/auth"
	"github.com/stuffrapp/stuffr/internal/store"
)

// LoginPage handles GET /simple/login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &PageData{Title: "Log in"})
}

// LoginSubmit handles POST /simple/login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	if email == "" || password == "" {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log in",
			Error: "Enter an email address and password.",
		})
		return
	}

	user, err := store.GetUserByEmail(r.Context(), s.DB, email)
	if err != nil || user == nil || !user.Active {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log in",
			Error: "Incorrect email or password.",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log in",
			Error: "Incorrect email or password.",
		})
		return
	}

	token, err := auth.GenerateToken(s.JWTSecret, user.ID, user.Email)
	if err != nil {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log in",
			Error: "Login failed, try again.",
		})
		return
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	// Bookkeeping only, the login itself succeeded.
	if err := store.RecordLogin(r.Context(), s.DB, user.ID, ip); err != nil {
		slog.Error("failed to record login", "error", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/simple",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(auth.TokenExpiry.Seconds()),
	})

	http.Redirect(w, r, "/simple/", http.StatusSeeOther)
}

// Logout handles POST /simple/logout.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	clearAuthCookie(w)
	http.Redirect(w, r, "/simple/login", http.StatusSeeOther)
}
