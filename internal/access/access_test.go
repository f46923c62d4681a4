package access

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stuffrapp/stuffr/internal/db"
	"github.com/stuffrapp/stuffr/internal/model"
	"github.com/stuffrapp/stuffr/internal/store"
)

// newTestUser seeds a user directly through the store, bypassing the
// registration flow.
func newTestUser(t *testing.T, database *sql.DB, email string) *model.User {
	t.Helper()
	user, err := store.CreateUser(context.Background(), database, email, "hash", "Test", "User")
	require.NoError(t, err)
	return user
}

// newTestInventory seeds an inventory for a user.
func newTestInventory(t *testing.T, database *sql.DB, name string, userID int64) *model.Inventory {
	t.Helper()
	inv, err := store.CreateInventory(context.Background(), database, name, userID)
	require.NoError(t, err)
	return inv
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return db.NewTestDB(t)
}
