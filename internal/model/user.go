package model

import "time"

// User is an account that owns inventories. Credential and login bookkeeping
// fields are maintained by the auth endpoints and never exposed to clients.
type User struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	NameFirst      string     `json:"name_first"`
	NameLast       string     `json:"name_last"`
	DateCreated    time.Time  `json:"date_created"`
	Active         bool       `json:"-"`
	LastLoginAt    *time.Time `json:"-"`
	CurrentLoginAt *time.Time `json:"-"`
	LastLoginIP    string     `json:"-"`
	CurrentLoginIP string     `json:"-"`
	LoginCount     int64      `json:"-"`
}

// AsMap returns the user's fields keyed by wire name. The password hash is
// never included.
func (u *User) AsMap() map[string]any {
	return map[string]any{
		"id":               u.ID,
		"email":            u.Email,
		"name_first":       u.NameFirst,
		"name_last":        u.NameLast,
		"date_created":     u.DateCreated,
		"active":           u.Active,
		"last_login_at":    u.LastLoginAt,
		"current_login_at": u.CurrentLoginAt,
		"last_login_ip":    u.LastLoginIP,
		"current_login_ip": u.CurrentLoginIP,
		"login_count":      u.LoginCount,
	}
}
