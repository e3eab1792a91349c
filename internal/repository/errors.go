// Package repository contains data access logic separated from HTTP handlers.
// Every collection exposed by the API (rooms, locations, reservations, users)
// is reached through a repository in this package; handlers never touch
// database/sql directly.
//
// Not-found policy: a SELECT that scans zero rows and an UPDATE/DELETE that
// affects zero rows both return ErrNotFound.  Any other error from the store
// is passed through unchanged and treated by handlers as an upstream failure.
// This keeps the "no matching row" case deterministic regardless of how the
// driver reports it.
package repository

import "errors"

// ErrNotFound is returned when an identifier matches no record in the target
// collection.  Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")
