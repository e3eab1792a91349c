// This file defines the Reservation model and its repository.  A Reservation
// links a user to a room for a date range.  Check-in and check-out are plain
// calendar dates; no time zone handling is applied and no overlap or
// date-order rule is enforced at this layer.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Reservation mirrors the 'reservations' table.  UserID and RoomID are soft
// references to users.id and rooms.id.
type Reservation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RoomID    string    `json:"room_id"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	CreatedAt time.Time `json:"created_at"`
}

// ReservationRepo encapsulates all database queries related to reservations.
type ReservationRepo struct {
	db *sql.DB
}

func NewReservationRepo(db *sql.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

// List returns every reservation in store order.
func (r *ReservationRepo) List(ctx context.Context) ([]Reservation, error) {
	const q = `SELECT id, user_id, room_id,
	                  DATE_FORMAT(check_in, '%Y-%m-%d'), DATE_FORMAT(check_out, '%Y-%m-%d'),
	                  created_at
	           FROM reservations ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Reservation{}
	for rows.Next() {
		var m Reservation
		if err := rows.Scan(&m.ID, &m.UserID, &m.RoomID, &m.CheckIn, &m.CheckOut, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single reservation by id, mapping zero rows to ErrNotFound.
func (r *ReservationRepo) Get(ctx context.Context, id string) (Reservation, error) {
	const q = `SELECT id, user_id, room_id,
	                  DATE_FORMAT(check_in, '%Y-%m-%d'), DATE_FORMAT(check_out, '%Y-%m-%d'),
	                  created_at
	           FROM reservations WHERE id = ?`
	var m Reservation
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.UserID, &m.RoomID, &m.CheckIn, &m.CheckOut, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Reservation{}, ErrNotFound
		}
		return Reservation{}, err
	}
	return m, nil
}

// Create inserts a new reservation with a generated id and returns the stored
// row including its created_at timestamp.
func (r *ReservationRepo) Create(ctx context.Context, in Reservation) (Reservation, error) {
	in.ID = uuid.NewString()
	const q = `INSERT INTO reservations (id, user_id, room_id, check_in, check_out) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, in.ID, in.UserID, in.RoomID, in.CheckIn, in.CheckOut); err != nil {
		return Reservation{}, err
	}
	return r.Get(ctx, in.ID)
}

// Update replaces every mutable field of the reservation identified by id.
func (r *ReservationRepo) Update(ctx context.Context, id string, in Reservation) (Reservation, error) {
	const q = `UPDATE reservations SET user_id = ?, room_id = ?, check_in = ?, check_out = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, in.UserID, in.RoomID, in.CheckIn, in.CheckOut, id); err != nil {
		return Reservation{}, err
	}
	return r.Get(ctx, id)
}

// Delete removes the reservation identified by id; ErrNotFound when nothing
// matched.
func (r *ReservationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
