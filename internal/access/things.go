package access

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stuffrapp/stuffr/internal/model"
	"github.com/stuffrapp/stuffr/internal/store"
)

// ListThings returns all non-deleted things in an inventory, in storage
// order. Fails with ErrNotFound if the inventory (or its owner) does not
// exist and with ErrPermission if the inventory belongs to another user.
func ListThings(ctx context.Context, db *sql.DB, inventoryID, userID int64) ([]model.Thing, error) {
	inv, err := store.GetInventory(ctx, db, inventoryID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("inventory %d: %w", inventoryID, ErrNotFound)
	}
	if err := checkOwner(ctx, db, inv, userID); err != nil {
		return nil, err
	}
	return store.ListThingsForInventory(ctx, db, inventoryID)
}

// GetThing returns a thing by ID, soft-deleted or not. The detail view shows
// deleted things even though listings hide them; that asymmetry is deliberate.
// Fails with ErrNotFound if the thing or the acting user does not exist and
// with ErrPermission if the thing's inventory belongs to another user.
func GetThing(ctx context.Context, db *sql.DB, thingID, userID int64) (*model.Thing, error) {
	thing, err := store.GetThing(ctx, db, thingID)
	if err != nil {
		return nil, err
	}
	if thing == nil {
		return nil, fmt.Errorf("thing %d: %w", thingID, ErrNotFound)
	}
	if err := requireUser(ctx, db, userID); err != nil {
		return nil, err
	}
	if err := checkThingOwner(ctx, db, thing, userID); err != nil {
		return nil, err
	}
	return thing, nil
}

// CreateThing creates a new thing in the given inventory from client input.
// The inventory ID comes from the call, never from the input: it is not a
// writable field. Fails with ErrNotFound if the inventory or user does not
// exist, ErrPermission if the inventory belongs to another user, and
// ErrInvalidData for bad input or a storage constraint violation.
func CreateThing(ctx context.Context, db *sql.DB, data any, inventoryID, userID int64) (*model.Thing, error) {
	inv, err := store.GetInventory(ctx, db, inventoryID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("inventory %d: %w", inventoryID, ErrNotFound)
	}
	if err := requireUser(ctx, db, userID); err != nil {
		return nil, err
	}
	if err := checkOwner(ctx, db, inv, userID); err != nil {
		return nil, err
	}

	fields, err := ThingFields.FilterInput(data)
	if err != nil {
		return nil, err
	}
	if err := ThingFields.CheckRequired(fields); err != nil {
		return nil, err
	}
	name, err := stringField(fields, "name")
	if err != nil {
		return nil, err
	}
	location, err := stringField(fields, "location")
	if err != nil {
		return nil, err
	}
	details, err := stringField(fields, "details")
	if err != nil {
		return nil, err
	}

	thing, err := store.CreateThing(ctx, db, name, location, details, inventoryID)
	if err != nil {
		if store.IsConstraintViolation(err) {
			return nil, fmt.Errorf("creating thing: %v: %w", err, ErrInvalidData)
		}
		return nil, err
	}
	return thing, nil
}

// UpdateThing applies a partial update to a thing and returns the fields
// actually written plus the refreshed modification timestamp. An empty input
// is legal: nothing changes except date_modified, which is still bumped and
// returned. Fails with ErrNotFound if the thing or user does not exist,
// ErrPermission if the thing's inventory belongs to another user, and
// ErrInvalidData for bad input or a storage constraint violation.
func UpdateThing(ctx context.Context, db *sql.DB, thingID int64, data any, userID int64) (map[string]any, error) {
	thing, err := store.GetThing(ctx, db, thingID)
	if err != nil {
		return nil, err
	}
	if thing == nil {
		return nil, fmt.Errorf("thing %d: %w", thingID, ErrNotFound)
	}
	if err := requireUser(ctx, db, userID); err != nil {
		return nil, err
	}
	if err := checkThingOwner(ctx, db, thing, userID); err != nil {
		return nil, err
	}

	fields, err := ThingFields.FilterInput(data)
	if err != nil {
		return nil, err
	}
	for name, v := range fields {
		if v == nil {
			continue
		}
		if _, ok := v.(string); !ok {
			return nil, fmt.Errorf("field %q must be a string: %w", name, ErrInvalidData)
		}
	}

	modified := time.Now().UTC()
	if err := store.UpdateThingFields(ctx, db, thingID, fields, modified); err != nil {
		if store.IsConstraintViolation(err) {
			return nil, fmt.Errorf("updating thing: %v: %w", err, ErrInvalidData)
		}
		return nil, err
	}

	changed := make(map[string]any, len(fields)+1)
	for name, v := range fields {
		changed[name] = v
	}
	changed["date_modified"] = modified
	return changed, nil
}

// DeleteThing soft-deletes a thing by stamping its deletion timestamp.
// Not idempotent: deleting an already-deleted thing overwrites the stamp
// with a newer one. Fails with ErrNotFound if the thing does not exist and
// ErrPermission if its inventory belongs to another user.
func DeleteThing(ctx context.Context, db *sql.DB, thingID, userID int64) error {
	thing, err := store.GetThing(ctx, db, thingID)
	if err != nil {
		return err
	}
	if thing == nil {
		return fmt.Errorf("thing %d: %w", thingID, ErrNotFound)
	}
	if err := checkThingOwner(ctx, db, thing, userID); err != nil {
		return err
	}
	return store.SoftDeleteThing(ctx, db, thingID, time.Now().UTC())
}

// CountThings returns the number of stored things.
func CountThings(ctx context.Context, db *sql.DB) (int64, error) {
	return store.CountThings(ctx, db)
}

// checkOwner fails with ErrNotFound if the inventory's owner cannot be
// resolved and ErrPermission if the owner is not the acting user.
func checkOwner(ctx context.Context, db *sql.DB, inv *model.Inventory, userID int64) error {
	owner, err := store.GetUser(ctx, db, inv.UserID)
	if err != nil {
		return err
	}
	if owner == nil {
		return fmt.Errorf("owner of inventory %d: %w", inv.ID, ErrNotFound)
	}
	if owner.ID != userID {
		return fmt.Errorf("inventory %d does not belong to user %d: %w", inv.ID, userID, ErrPermission)
	}
	return nil
}

// checkThingOwner resolves a thing's effective owner through its inventory.
// Things never carry an owner ID themselves.
func checkThingOwner(ctx context.Context, db *sql.DB, thing *model.Thing, userID int64) error {
	inv, err := store.GetInventory(ctx, db, thing.InventoryID)
	if err != nil {
		return err
	}
	if inv == nil {
		return fmt.Errorf("inventory %d of thing %d: %w", thing.InventoryID, thing.ID, ErrNotFound)
	}
	return checkOwner(ctx, db, inv, userID)
}
