package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stuffrapp/stuffr/internal/model"
)

// CreateUser creates a new active user.
func CreateUser(ctx context.Context, db *sql.DB, email, passwordHash, nameFirst, nameLast string) (*model.User, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, name_first, name_last, date_created)
		 VALUES (?, ?, ?, ?, ?)`,
		email, passwordHash, nameFirst, nameLast, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting user id: %w", err)
	}

	return GetUser(ctx, db, id)
}

// GetUser returns a user by ID.
func GetUser(ctx context.Context, db *sql.DB, id int64) (*model.User, error) {
	u := &model.User{}
	var lastIP, currentIP sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name_first, name_last, date_created,
		        active, last_login_at, current_login_at, last_login_ip, current_login_ip, login_count
		 FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.NameFirst, &u.NameLast, &u.DateCreated,
		&u.Active, &u.LastLoginAt, &u.CurrentLoginAt, &lastIP, &currentIP, &u.LoginCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	u.LastLoginIP = lastIP.String
	u.CurrentLoginIP = currentIP.String
	u.DateCreated = utc(u.DateCreated)
	u.LastLoginAt = utcPtr(u.LastLoginAt)
	u.CurrentLoginAt = utcPtr(u.CurrentLoginAt)
	return u, nil
}

// GetUserByEmail returns a user by email address.
func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*model.User, error) {
	var id int64
	err := db.QueryRowContext(ctx,
		`SELECT id FROM users WHERE email = ?`, email,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return GetUser(ctx, db, id)
}

// UserExists reports whether a user with the given ID is stored.
func UserExists(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx,
		`SELECT 1 FROM users WHERE id = ?`, id,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking user: %w", err)
	}
	return true, nil
}

// CountUsers returns the number of stored users.
func CountUsers(ctx context.Context, db *sql.DB) (int64, error) {
	var count int64
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return count, nil
}

// RecordLogin updates a user's login bookkeeping: the previous login becomes
// the last login, the new one the current, and the counter is incremented.
func RecordLogin(ctx context.Context, db *sql.DB, id int64, remoteIP string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE users
		 SET last_login_at = current_login_at,
		     last_login_ip = current_login_ip,
		     current_login_at = ?,
		     current_login_ip = ?,
		     login_count = login_count + 1
		 WHERE id = ?`,
		time.Now().UTC(), remoteIP, id,
	)
	if err != nil {
		return fmt.Errorf("recording login: %w", err)
	}
	return nil
}

// UpdateUserPassword updates a user's password hash.
func UpdateUserPassword(ctx context.Context, db *sql.DB, id int64, passwordHash string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE users SET password_hash = ? WHERE id = ?`,
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("updating user password: %w", err)
	}
	return nil
}
