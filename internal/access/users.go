package access

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/stuffrapp/stuffr/internal/model"
	"github.com/stuffrapp/stuffr/internal/store"
)

// UserExists reports whether a user with the given ID is stored.
func UserExists(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	return store.UserExists(ctx, db, id)
}

// CountUsers returns the number of stored users. Used for aggregate
// statistics only, never for authorization.
func CountUsers(ctx context.Context, db *sql.DB) (int64, error) {
	return store.CountUsers(ctx, db)
}

// SetupNewUser performs first-time setup for a freshly registered user,
// creating their default inventory. The registration flow calls this
// synchronously right after creating the user, so the side effect stays
// visible at the call site.
func SetupNewUser(ctx context.Context, db *sql.DB, user *model.User) (*model.Inventory, error) {
	slog.Info("initializing new user", "email", user.Email)

	inv, err := store.CreateInventory(ctx, db, fmt.Sprintf("%s's stuff", user.NameFirst), user.ID)
	if err != nil {
		return nil, fmt.Errorf("creating default inventory: %w", err)
	}
	return inv, nil
}
