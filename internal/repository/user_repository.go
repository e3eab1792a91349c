// This file defines the User model and its repository.  User records belong
// to the authentication subsystem: the API stores no credentials, only the
// identity that minted bearer tokens resolve to.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User mirrors the 'users' table.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRepo encapsulates all database queries related to users.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// List returns every user in store order.
func (r *UserRepo) List(ctx context.Context) ([]User, error) {
	const q = `SELECT id, email, name, created_at FROM users ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []User{}
	for rows.Next() {
		var m User
		if err := rows.Scan(&m.ID, &m.Email, &m.Name, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single user by id, mapping zero rows to ErrNotFound.
func (r *UserRepo) Get(ctx context.Context, id string) (User, error) {
	const q = `SELECT id, email, name, created_at FROM users WHERE id = ?`
	var m User
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Email, &m.Name, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return m, nil
}

// Create inserts a new user with a generated id and normalized email, then
// returns the stored row.
func (r *UserRepo) Create(ctx context.Context, in User) (User, error) {
	in.ID = uuid.NewString()
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	const q = `INSERT INTO users (id, email, name) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, in.ID, in.Email, in.Name); err != nil {
		return User{}, err
	}
	return r.Get(ctx, in.ID)
}

// Update replaces email and name of the user identified by id.
func (r *UserRepo) Update(ctx context.Context, id string, in User) (User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	const q = `UPDATE users SET email = ?, name = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, in.Email, in.Name, id); err != nil {
		return User{}, err
	}
	return r.Get(ctx, id)
}

// Delete removes the user identified by id; ErrNotFound when nothing matched.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
