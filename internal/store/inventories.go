package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stuffrapp/stuffr/internal/model"
)

// CreateInventory creates a new inventory owned by the given user.
func CreateInventory(ctx context.Context, db *sql.DB, name string, userID int64) (*model.Inventory, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO inventories (name, date_created, user_id) VALUES (?, ?, ?)`,
		name, time.Now().UTC(), userID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating inventory: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting inventory id: %w", err)
	}

	return GetInventory(ctx, db, id)
}

// GetInventory returns an inventory by ID.
func GetInventory(ctx context.Context, db *sql.DB, id int64) (*model.Inventory, error) {
	inv := &model.Inventory{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, date_created, user_id FROM inventories WHERE id = ?`, id,
	).Scan(&inv.ID, &inv.Name, &inv.DateCreated, &inv.UserID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting inventory: %w", err)
	}
	inv.DateCreated = utc(inv.DateCreated)
	return inv, nil
}

// ListInventoriesForUser returns all inventories owned by a user, in
// insertion order.
func ListInventoriesForUser(ctx context.Context, db *sql.DB, userID int64) ([]model.Inventory, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, date_created, user_id FROM inventories
		 WHERE user_id = ? ORDER BY id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing inventories: %w", err)
	}
	defer rows.Close()

	var inventories []model.Inventory
	for rows.Next() {
		var inv model.Inventory
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.DateCreated, &inv.UserID); err != nil {
			return nil, fmt.Errorf("scanning inventory: %w", err)
		}
		inv.DateCreated = utc(inv.DateCreated)
		inventories = append(inventories, inv)
	}
	return inventories, rows.Err()
}

// InventoryExists reports whether an inventory with the given ID is stored.
func InventoryExists(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx,
		`SELECT 1 FROM inventories WHERE id = ?`, id,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking inventory: %w", err)
	}
	return true, nil
}

// CountInventories returns the number of stored inventories.
func CountInventories(ctx context.Context, db *sql.DB) (int64, error) {
	var count int64
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventories`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting inventories: %w", err)
	}
	return count, nil
}
