// This file defines the Room model and its repository.  A Room is a bookable
// unit inside a Location; location_id is a soft reference (no FK cascade is
// enforced so rooms survive the deletion of their location).
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used for sentinel comparisons
	"time"         // time holds the store-assigned creation timestamp

	"github.com/google/uuid" // uuid generates the opaque string identifiers
)

// Room mirrors the 'rooms' table.  ID is an opaque string assigned at insert
// time and immutable afterwards; CreatedAt is assigned by the store.
type Room struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	Type       string    `json:"type"`
	Price      float64   `json:"price"`
	LocationID string    `json:"location_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// RoomRepo encapsulates all database queries related to rooms.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the provided DB handle so the
// connection can be injected at startup and in tests.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// List returns every room in store order.
func (r *RoomRepo) List(ctx context.Context) ([]Room, error) {
	const q = `SELECT id, number, type, price, location_id, created_at
	           FROM rooms ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Room{}
	for rows.Next() {
		var m Room
		if err := rows.Scan(&m.ID, &m.Number, &m.Type, &m.Price, &m.LocationID, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single room by id.  ErrNotFound is returned when the id
// matches no row.
func (r *RoomRepo) Get(ctx context.Context, id string) (Room, error) {
	const q = `SELECT id, number, type, price, location_id, created_at
	           FROM rooms WHERE id = ?`
	var m Room
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Number, &m.Type, &m.Price, &m.LocationID, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Room{}, ErrNotFound
		}
		return Room{}, err
	}
	return m, nil
}

// Create inserts a new room with a generated id and returns the stored row,
// including the created_at timestamp the store assigned.
func (r *RoomRepo) Create(ctx context.Context, in Room) (Room, error) {
	in.ID = uuid.NewString()
	const q = `INSERT INTO rooms (id, number, type, price, location_id) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, in.ID, in.Number, in.Type, in.Price, in.LocationID); err != nil {
		return Room{}, err
	}
	// Follow-up SELECT to pick up the store-assigned created_at.
	return r.Get(ctx, in.ID)
}

// Update replaces every mutable field of the room identified by id.  MySQL
// reports zero affected rows for no-op updates, so "row missing" is detected
// by the follow-up fetch rather than by RowsAffected.
func (r *RoomRepo) Update(ctx context.Context, id string, in Room) (Room, error) {
	const q = `UPDATE rooms SET number = ?, type = ?, price = ?, location_id = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, in.Number, in.Type, in.Price, in.LocationID, id); err != nil {
		return Room{}, err
	}
	return r.Get(ctx, id)
}

// Delete removes the room identified by id.  ErrNotFound is returned when
// nothing was deleted, which makes repeated deletes observable as 404s.
func (r *RoomRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
