package model

import "time"

// Thing is an item record inside an inventory. A non-nil DateDeleted marks it
// soft-deleted: hidden from listings but still addressable by id.
type Thing struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	DateCreated  time.Time  `json:"date_created"`
	DateModified time.Time  `json:"date_modified"`
	DateDeleted  *time.Time `json:"date_deleted"`
	Location     string     `json:"location"`
	Details      string     `json:"details"`
	InventoryID  int64      `json:"inventory_id"`
}

// Deleted reports whether the thing has been soft-deleted.
func (t *Thing) Deleted() bool {
	return t.DateDeleted != nil
}

// AsMap returns the thing's fields keyed by wire name.
func (t *Thing) AsMap() map[string]any {
	return map[string]any{
		"id":            t.ID,
		"name":          t.Name,
		"date_created":  t.DateCreated,
		"date_modified": t.DateModified,
		"date_deleted":  t.DateDeleted,
		"location":      t.Location,
		"details":       t.Details,
		"inventory_id":  t.InventoryID,
	}
}
