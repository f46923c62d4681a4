package model

import "time"

// Inventory is a named collection of things owned by exactly one user.
// The owner is fixed at creation time.
type Inventory struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DateCreated time.Time `json:"date_created"`
	UserID      int64     `json:"user_id"`
}

// AsMap returns the inventory's fields keyed by wire name.
func (i *Inventory) AsMap() map[string]any {
	return map[string]any{
		"id":           i.ID,
		"name":         i.Name,
		"date_created": i.DateCreated,
		"user_id":      i.UserID,
	}
}
