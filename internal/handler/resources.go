package handler

import (
	"strings"

	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// This file instantiates the generic Resource handler once per entity.  Each
// constructor pins the resource label and the required-field rule; everything
// else is shared behavior from resource.go.

// NewRoomResource exposes rooms.  All of number, type, price and location_id
// must be present on create and update.
func NewRoomResource(store Store[repository.Room]) *Resource[repository.Room] {
	return &Resource[repository.Room]{
		Label: "Room",
		Store: store,
		Required: func(m repository.Room) string {
			if strings.TrimSpace(m.Number) == "" ||
				strings.TrimSpace(m.Type) == "" ||
				m.Price <= 0 ||
				strings.TrimSpace(m.LocationID) == "" {
				return "All fields are required"
			}
			return ""
		},
	}
}

// NewLocationResource exposes locations.
func NewLocationResource(store Store[repository.Location]) *Resource[repository.Location] {
	return &Resource[repository.Location]{
		Label: "Location",
		Store: store,
		Required: func(m repository.Location) string {
			if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Address) == "" {
				return "Name and address are required"
			}
			return ""
		},
	}
}

// NewReservationResource exposes reservations.  The onCreate hook receives
// every successfully created reservation; the router wires it to the event
// publisher.  No date-order or overlap rule is applied: a reservation is a
// plain record and conflicting bookings are arbitrated by staff, not by the
// API.
func NewReservationResource(store Store[repository.Reservation], onCreate func(repository.Reservation)) *Resource[repository.Reservation] {
	return &Resource[repository.Reservation]{
		Label:    "Reservation",
		Store:    store,
		OnCreate: onCreate,
		Required: func(m repository.Reservation) string {
			if strings.TrimSpace(m.UserID) == "" ||
				strings.TrimSpace(m.RoomID) == "" ||
				strings.TrimSpace(m.CheckIn) == "" ||
				strings.TrimSpace(m.CheckOut) == "" {
				return "All fields are required"
			}
			return ""
		},
	}
}

// NewUserResource exposes users.  User records carry identity only; there are
// no credentials to validate here.
func NewUserResource(store Store[repository.User]) *Resource[repository.User] {
	return &Resource[repository.User]{
		Label: "User",
		Store: store,
		Required: func(m repository.User) string {
			if strings.TrimSpace(m.Email) == "" || strings.TrimSpace(m.Name) == "" {
				return "Email and name are required"
			}
			return ""
		},
	}
}
