// This file defines the Location model and its repository.  A Location is a
// property (hotel site) that rooms reference through their location_id.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Location mirrors the 'locations' table.
type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// LocationRepo encapsulates all database queries related to locations.
type LocationRepo struct {
	db *sql.DB
}

func NewLocationRepo(db *sql.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

// List returns every location in store order.
func (r *LocationRepo) List(ctx context.Context) ([]Location, error) {
	const q = `SELECT id, name, address, created_at FROM locations ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Location{}
	for rows.Next() {
		var m Location
		if err := rows.Scan(&m.ID, &m.Name, &m.Address, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single location by id, mapping zero rows to ErrNotFound.
func (r *LocationRepo) Get(ctx context.Context, id string) (Location, error) {
	const q = `SELECT id, name, address, created_at FROM locations WHERE id = ?`
	var m Location
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Name, &m.Address, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Location{}, ErrNotFound
		}
		return Location{}, err
	}
	return m, nil
}

// Create inserts a new location with a generated id and returns the stored row.
func (r *LocationRepo) Create(ctx context.Context, in Location) (Location, error) {
	in.ID = uuid.NewString()
	const q = `INSERT INTO locations (id, name, address) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, in.ID, in.Name, in.Address); err != nil {
		return Location{}, err
	}
	return r.Get(ctx, in.ID)
}

// Update replaces name and address of the location identified by id.
func (r *LocationRepo) Update(ctx context.Context, id string, in Location) (Location, error) {
	const q = `UPDATE locations SET name = ?, address = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, in.Name, in.Address, id); err != nil {
		return Location{}, err
	}
	return r.Get(ctx, id)
}

// Delete removes the location identified by id; ErrNotFound when nothing
// matched.  Rooms pointing at the location keep their dangling location_id
// (soft reference, no cascade).
func (r *LocationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
