package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/stuffrapp/stuffr/internal/model"
)

// thingColumns maps client field names to their table columns. Only these
// fields may be written through UpdateThingFields.
var thingColumns = map[string]string{
	"name":     "name",
	"location": "location",
	"details":  "details",
}

// CreateThing creates a new thing in the given inventory. Creation and
// modification timestamps are set to the current time; the thing starts
// out active (no deletion timestamp).
func CreateThing(ctx context.Context, db *sql.DB, name, location, details string, inventoryID int64) (*model.Thing, error) {
	now := time.Now().UTC()
	result, err := db.ExecContext(ctx,
		`INSERT INTO things (name, date_created, date_modified, location, details, inventory_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		name, now, now, nullable(location), nullable(details), inventoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating thing: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting thing id: %w", err)
	}

	return GetThing(ctx, db, id)
}

// GetThing returns a thing by ID, whether or not it is soft-deleted.
func GetThing(ctx context.Context, db *sql.DB, id int64) (*model.Thing, error) {
	t := &model.Thing{}
	var location, details sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, date_created, date_modified, date_deleted, location, details, inventory_id
		 FROM things WHERE id = ?`, id,
	).Scan(&t.ID, &t.Name, &t.DateCreated, &t.DateModified, &t.DateDeleted, &location, &details, &t.InventoryID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting thing: %w", err)
	}
	t.Location = location.String
	t.Details = details.String
	t.DateCreated = utc(t.DateCreated)
	t.DateModified = utc(t.DateModified)
	t.DateDeleted = utcPtr(t.DateDeleted)
	return t, nil
}

// ListThingsForInventory returns all non-deleted things in an inventory, in
// insertion order.
func ListThingsForInventory(ctx context.Context, db *sql.DB, inventoryID int64) ([]model.Thing, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, date_created, date_modified, date_deleted, location, details, inventory_id
		 FROM things WHERE inventory_id = ? AND date_deleted IS NULL ORDER BY id`, inventoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing things: %w", err)
	}
	defer rows.Close()

	var things []model.Thing
	for rows.Next() {
		var t model.Thing
		var location, details sql.NullString
		if err := rows.Scan(&t.ID, &t.Name, &t.DateCreated, &t.DateModified, &t.DateDeleted,
			&location, &details, &t.InventoryID); err != nil {
			return nil, fmt.Errorf("scanning thing: %w", err)
		}
		t.Location = location.String
		t.Details = details.String
		t.DateCreated = utc(t.DateCreated)
		t.DateModified = utc(t.DateModified)
		t.DateDeleted = utcPtr(t.DateDeleted)
		things = append(things, t)
	}
	return things, rows.Err()
}

// CountThings returns the number of stored things, including soft-deleted
// ones.
func CountThings(ctx context.Context, db *sql.DB) (int64, error) {
	var count int64
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM things`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting things: %w", err)
	}
	return count, nil
}

// UpdateThingFields writes the given client fields to a thing and stamps
// date_modified, all in one statement. Fields must be keyed by client field
// name; unknown names are an error. A nil value clears the column.
func UpdateThingFields(ctx context.Context, db *sql.DB, id int64, fields map[string]any, modified time.Time) error {
	set := []string{"date_modified = ?"}
	args := []any{modified}
	for name, value := range fields {
		column, ok := thingColumns[name]
		if !ok {
			return fmt.Errorf("updating thing: unknown field %q", name)
		}
		set = append(set, column+" = ?")
		args = append(args, value)
	}
	args = append(args, id)

	_, err := db.ExecContext(ctx,
		`UPDATE things SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...,
	)
	if err != nil {
		return fmt.Errorf("updating thing: %w", err)
	}
	return nil
}

// SoftDeleteThing stamps a thing's deletion timestamp. Deliberately not
// conditional on the thing being active: deleting again overwrites the
// timestamp with a newer one.
func SoftDeleteThing(ctx context.Context, db *sql.DB, id int64, when time.Time) error {
	_, err := db.ExecContext(ctx,
		`UPDATE things SET date_deleted = ? WHERE id = ?`, when, id,
	)
	if err != nil {
		return fmt.Errorf("deleting thing: %w", err)
	}
	return nil
}

// SetThingImage sets a thing's image data.
func SetThingImage(ctx context.Context, db *sql.DB, id int64, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE things SET image = ?, image_mime = ? WHERE id = ?`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting thing image: %w", err)
	}
	return nil
}

// GetThingImage returns a thing's image data and MIME type.
func GetThingImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM things WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting thing image: %w", err)
	}
	return image, mime.String, nil
}

// nullable converts an empty string to NULL for optional text columns.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
