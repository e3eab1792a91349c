// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published when a reservation is successfully
// created.  It carries enough information for downstream consumers to log or
// notify without querying the primary database.
type ReservationCreatedEvent struct {
    ReservationID string `json:"reservation_id"`
    UserID        string `json:"user_id"`
    RoomID        string `json:"room_id"`
    CheckIn       string `json:"check_in"`
    CheckOut      string `json:"check_out"`
    CreatedAt     string `json:"created_at"`
}
