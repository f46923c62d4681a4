package access

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stuffrapp/stuffr/internal/model"
	"github.com/stuffrapp/stuffr/internal/store"
)

// InventoryExists reports whether an inventory with the given ID is stored.
func InventoryExists(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	return store.InventoryExists(ctx, db, id)
}

// ListInventories returns all inventories owned by the given user, in storage
// order. Fails with ErrNotFound if the user does not exist.
func ListInventories(ctx context.Context, db *sql.DB, userID int64) ([]model.Inventory, error) {
	if err := requireUser(ctx, db, userID); err != nil {
		return nil, err
	}
	return store.ListInventoriesForUser(ctx, db, userID)
}

// CreateInventory creates a new inventory owned by userID from client input.
// Fails with ErrNotFound if the user does not exist and with ErrInvalidData
// if the input is not an object, the name is missing or null, or storage
// reports a constraint violation.
func CreateInventory(ctx context.Context, db *sql.DB, data any, userID int64) (*model.Inventory, error) {
	if err := requireUser(ctx, db, userID); err != nil {
		return nil, err
	}

	fields, err := InventoryFields.FilterInput(data)
	if err != nil {
		return nil, err
	}
	if err := InventoryFields.CheckRequired(fields); err != nil {
		return nil, err
	}
	name, err := stringField(fields, "name")
	if err != nil {
		return nil, err
	}

	inv, err := store.CreateInventory(ctx, db, name, userID)
	if err != nil {
		if store.IsConstraintViolation(err) {
			return nil, fmt.Errorf("creating inventory: %v: %w", err, ErrInvalidData)
		}
		return nil, err
	}
	return inv, nil
}

// CountInventories returns the number of stored inventories.
func CountInventories(ctx context.Context, db *sql.DB) (int64, error) {
	return store.CountInventories(ctx, db)
}

// requireUser fails with ErrNotFound if the user ID references no stored user.
func requireUser(ctx context.Context, db *sql.DB, userID int64) error {
	ok, err := store.UserExists(ctx, db, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	return nil
}

// stringField extracts a non-null string value from filtered input.
func stringField(fields map[string]any, name string) (string, error) {
	v, ok := fields[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string: %w", name, ErrInvalidData)
	}
	return s, nil
}
