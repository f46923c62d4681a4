package web

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/stuffrapp/stuffr/internal/db"
	"github.com/stuffrapp/stuffr/internal/model"
	"github.com/stuffrapp/stuffr/internal/store"
)

const testJWTSecret = "test-secret"

func setupWebServer(t *testing.T) (*httptest.Server, *sql.DB) {
	t.Helper()
	database := db.NewTestDB(t)
	router, err := NewRouter(database, testJWTSecret)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, database
}

func seedUser(t *testing.T, database *sql.DB, email, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user, err := store.CreateUser(context.Background(), database, email, string(hash), "Test", "User")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

// loginClient logs in through the form and returns a client carrying the
// session cookie.
func loginClient(t *testing.T, server *httptest.Server, email, password string) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	client := &http.Client{Jar: jar}

	resp, err := client.PostForm(server.URL+"/simple/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	resp.Body.Close()
	return client
}

func getPage(t *testing.T, client *http.Client, pageURL string, wantStatus int) string {
	t.Helper()
	resp, err := client.Get(pageURL)
	if err != nil {
		t.Fatalf("GET %s: %v", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s: expected %d, got %d", pageURL, wantStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return string(body)
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	server, _ := setupWebServer(t)

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Get(server.URL + "/simple/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/simple/login" {
		t.Errorf("expected redirect to login, got %q", loc)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	server, database := setupWebServer(t)
	seedUser(t, database, "alice@example.com", "password")

	client := &http.Client{}
	resp, err := client.PostForm(server.URL+"/simple/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"wrong"},
	})
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Incorrect email or password") {
		t.Error("expected error message on the login page")
	}
}

func TestLoginAndMainPage(t *testing.T) {
	server, database := setupWebServer(t)
	seedUser(t, database, "alice@example.com", "password")

	client := loginClient(t, server, "alice@example.com", "password")
	body := getPage(t, client, server.URL+"/simple/", http.StatusOK)
	if !strings.Contains(body, "simple interface") {
		t.Error("expected main page content")
	}
}

func TestInventoriesPage(t *testing.T) {
	server, database := setupWebServer(t)
	ctx := context.Background()
	user := seedUser(t, database, "alice@example.com", "password")
	if _, err := store.CreateInventory(ctx, database, "Garage", user.ID); err != nil {
		t.Fatalf("CreateInventory: %v", err)
	}

	client := loginClient(t, server, "alice@example.com", "password")
	body := getPage(t, client, server.URL+"/simple/inventories/", http.StatusOK)
	if !strings.Contains(body, "Garage") {
		t.Error("expected inventory name on the page")
	}
}

func TestThingsPage(t *testing.T) {
	server, database := setupWebServer(t)
	ctx := context.Background()
	user := seedUser(t, database, "alice@example.com", "password")
	inv, err := store.CreateInventory(ctx, database, "Garage", user.ID)
	if err != nil {
		t.Fatalf("CreateInventory: %v", err)
	}
	if _, err := store.CreateThing(ctx, database, "Drill", "Shelf 1", "", inv.ID); err != nil {
		t.Fatalf("CreateThing: %v", err)
	}

	client := loginClient(t, server, "alice@example.com", "password")
	invURL := server.URL + "/simple/inventories/" + itoa(inv.ID) + "/"
	body := getPage(t, client, invURL, http.StatusOK)
	if !strings.Contains(body, "Drill") {
		t.Error("expected thing name on the page")
	}
}

func TestThingsPageForbidden(t *testing.T) {
	server, database := setupWebServer(t)
	ctx := context.Background()
	owner := seedUser(t, database, "alice@example.com", "password")
	seedUser(t, database, "bob@example.com", "password")
	inv, err := store.CreateInventory(ctx, database, "Garage", owner.ID)
	if err != nil {
		t.Fatalf("CreateInventory: %v", err)
	}

	client := loginClient(t, server, "bob@example.com", "password")

	// Another user's inventory and a missing one look the same.
	getPage(t, client, server.URL+"/simple/inventories/"+itoa(inv.ID)+"/", http.StatusForbidden)
	getPage(t, client, server.URL+"/simple/inventories/424242/", http.StatusForbidden)
}

func TestThingDetailPage(t *testing.T) {
	server, database := setupWebServer(t)
	ctx := context.Background()
	user := seedUser(t, database, "alice@example.com", "password")
	inv, err := store.CreateInventory(ctx, database, "Garage", user.ID)
	if err != nil {
		t.Fatalf("CreateInventory: %v", err)
	}
	thing, err := store.CreateThing(ctx, database, "Drill", "Shelf 1", "Cordless", inv.ID)
	if err != nil {
		t.Fatalf("CreateThing: %v", err)
	}

	client := loginClient(t, server, "alice@example.com", "password")
	detailURL := server.URL + "/simple/inventories/" + itoa(inv.ID) + "/" + itoa(thing.ID) + "/"
	body := getPage(t, client, detailURL, http.StatusOK)
	if !strings.Contains(body, "Drill") || !strings.Contains(body, "Cordless") {
		t.Error("expected thing details on the page")
	}
}

func TestThingDetailInventoryMismatch(t *testing.T) {
	server, database := setupWebServer(t)
	ctx := context.Background()
	user := seedUser(t, database, "alice@example.com", "password")
	inv, err := store.CreateInventory(ctx, database, "Garage", user.ID)
	if err != nil {
		t.Fatalf("CreateInventory: %v", err)
	}
	other, err := store.CreateInventory(ctx, database, "Attic", user.ID)
	if err != nil {
		t.Fatalf("CreateInventory: %v", err)
	}
	thing, err := store.CreateThing(ctx, database, "Drill", "", "", inv.ID)
	if err != nil {
		t.Fatalf("CreateThing: %v", err)
	}

	client := loginClient(t, server, "alice@example.com", "password")

	// Correct thing id under the wrong inventory id.
	wrongURL := server.URL + "/simple/inventories/" + itoa(other.ID) + "/" + itoa(thing.ID) + "/"
	getPage(t, client, wrongURL, http.StatusBadRequest)
}

func TestLogoutClearsSession(t *testing.T) {
	server, database := setupWebServer(t)
	seedUser(t, database, "alice@example.com", "password")

	client := loginClient(t, server, "alice@example.com", "password")
	getPage(t, client, server.URL+"/simple/", http.StatusOK)

	resp, err := client.PostForm(server.URL+"/simple/logout", url.Values{})
	if err != nil {
		t.Fatalf("logout request: %v", err)
	}
	resp.Body.Close()

	// The cleared cookie redirects back to the login page.
	body := getPage(t, client, server.URL+"/simple/", http.StatusOK)
	if !strings.Contains(body, "Log in") {
		t.Error("expected the login page after logout")
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
