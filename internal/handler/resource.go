// Package handler contains the HTTP handlers of the API.  All four resources
// share one request shape — parse input, issue a single store call, translate
// the result — so the handler is written once, generically, and instantiated
// per resource instead of being copied four times.
package handler

import (
	"context"  // context carries per-request deadlines into store calls
	"errors"   // errors is used for sentinel comparisons
	"net/http" // http provides status code constants
	"time"     // time bounds every store call

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// queryTimeout bounds every store call so that a stalled dependency surfaces
// as a 500 instead of hanging the request forever.
const queryTimeout = 5 * time.Second

// Store is the gateway contract a resource needs: one collection, filterable
// only by id, returning ErrNotFound when an id matches nothing.  All
// repositories in internal/repository satisfy it.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, in T) (T, error)
	Update(ctx context.Context, id string, in T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Resource is the generic handler for one collection.  Label names the
// resource in error bodies ("Room not found").  Required inspects a decoded
// body and returns the 400 message when a required field is missing, or ""
// when the payload is complete.  OnCreate, when set, runs after a successful
// create (used to publish reservation events); it must not affect the
// response.
type Resource[T any] struct {
	Label    string
	Store    Store[T]
	Required func(T) string
	OnCreate func(T)
}

// List handles GET /<collection>.  It returns the full record set in store
// order; there is no pagination or filtering.
func (r *Resource[T]) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	items, err := r.Store.List(ctx)
	if err != nil {
		c.Logger().Errorf("%s list failed: %v", r.Label, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /<collection>/:id.
func (r *Resource[T]) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	item, err := r.Store.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": r.Label + " not found"})
		}
		c.Logger().Errorf("%s get failed: %v", r.Label, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /<collection>.  Validation happens before any store
// call; a payload with a missing required field never reaches the store.
func (r *Resource[T]) Create(c echo.Context) error {
	var in T
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := r.Required(in); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	created, err := r.Store.Create(ctx, in)
	if err != nil {
		c.Logger().Errorf("%s create failed: %v", r.Label, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if r.OnCreate != nil {
		r.OnCreate(created)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /<collection>/:id with full-replacement semantics: every
// required field must be resupplied, a missing one triggers the same 400 as
// Create.
func (r *Resource[T]) Update(c echo.Context) error {
	var in T
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := r.Required(in); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	updated, err := r.Store.Update(ctx, c.Param("id"), in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": r.Label + " not found"})
		}
		c.Logger().Errorf("%s update failed: %v", r.Label, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /<collection>/:id.  Deleting an id twice yields 404
// the second time; the operation is permanent, there is no soft delete.
func (r *Resource[T]) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	if err := r.Store.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": r.Label + " not found"})
		}
		c.Logger().Errorf("%s delete failed: %v", r.Label, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": r.Label + " deleted"})
}
