package store

import (
	"context"
	"testing"
	"time"

	"github.com/stuffrapp/stuffr/internal/db"
)

func TestCreateAndGetUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, "alice@example.com", "hash123", "Alice", "Tester")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("expected email 'alice@example.com', got %q", user.Email)
	}
	if !user.Active {
		t.Error("expected new user to be active")
	}
	if user.DateCreated.Location() != time.UTC {
		t.Errorf("expected UTC creation time, got %v", user.DateCreated.Location())
	}

	got, err := GetUser(ctx, database, user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.NameFirst != "Alice" || got.NameLast != "Tester" {
		t.Errorf("unexpected names: %q %q", got.NameFirst, got.NameLast)
	}

	missing, err := GetUser(ctx, database, user.ID+100)
	if err != nil {
		t.Fatalf("GetUser missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing user")
	}
}

func TestGetUserByEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "alice@example.com", "hash", "Alice", "Tester")

	user, err := GetUserByEmail(ctx, database, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}

	missing, err := GetUserByEmail(ctx, database, "bob@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing user")
	}
}

func TestDuplicateEmailIsConstraintViolation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, database, "alice@example.com", "hash", "Alice", "One"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, err := CreateUser(ctx, database, "alice@example.com", "hash", "Alice", "Two")
	if err == nil {
		t.Fatal("expected error for duplicate email")
	}
	if !IsConstraintViolation(err) {
		t.Errorf("expected constraint violation, got %v", err)
	}
}

func TestUserExistsAndCount(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "a@example.com", "hash", "A", "A")
	CreateUser(ctx, database, "b@example.com", "hash", "B", "B")

	ok, err := UserExists(ctx, database, user.ID)
	if err != nil {
		t.Fatalf("UserExists: %v", err)
	}
	if !ok {
		t.Error("expected user to exist")
	}

	ok, _ = UserExists(ctx, database, 9999)
	if ok {
		t.Error("expected missing user to not exist")
	}

	count, err := CountUsers(ctx, database)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 users, got %d", count)
	}
}

func TestRecordLogin(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "a@example.com", "hash", "A", "A")

	if err := RecordLogin(ctx, database, user.ID, "10.0.0.1"); err != nil {
		t.Fatalf("RecordLogin: %v", err)
	}
	if err := RecordLogin(ctx, database, user.ID, "10.0.0.2"); err != nil {
		t.Fatalf("RecordLogin: %v", err)
	}

	got, _ := GetUser(ctx, database, user.ID)
	if got.LoginCount != 2 {
		t.Errorf("expected login count 2, got %d", got.LoginCount)
	}
	if got.CurrentLoginIP != "10.0.0.2" {
		t.Errorf("expected current ip 10.0.0.2, got %q", got.CurrentLoginIP)
	}
	if got.LastLoginIP != "10.0.0.1" {
		t.Errorf("expected last ip 10.0.0.1, got %q", got.LastLoginIP)
	}
	if got.CurrentLoginAt == nil || got.LastLoginAt == nil {
		t.Fatal("expected login timestamps to be set")
	}
	if got.CurrentLoginAt.Location() != time.UTC {
		t.Errorf("expected UTC login time, got %v", got.CurrentLoginAt.Location())
	}
}

func TestUpdateUserPassword(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "a@example.com", "oldhash", "A", "A")

	if err := UpdateUserPassword(ctx, database, user.ID, "newhash"); err != nil {
		t.Fatalf("UpdateUserPassword: %v", err)
	}

	got, _ := GetUser(ctx, database, user.ID)
	if got.PasswordHash != "newhash" {
		t.Errorf("expected updated hash, got %q", got.PasswordHash)
	}
}
