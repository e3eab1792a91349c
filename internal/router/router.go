package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// RegisterRoutes wires every resource onto the provided Echo instance.  The
// gate policy is applied here, in one place: reads on rooms and locations are
// public (and served through the response cache), writes require an
// authenticated principal, and reservations and users are gated on every
// method.  Handlers never inspect authentication themselves.
func RegisterRoutes(
	e *echo.Echo,
	rooms *handler.Resource[repository.Room],
	locations *handler.Resource[repository.Location],
	reservations *handler.Resource[repository.Reservation],
	users *handler.Resource[repository.User],
	auth echo.MiddlewareFunc,
	cache echo.MiddlewareFunc,
) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Rooms: public reads, gated writes.
	e.GET("/rooms", rooms.List, cache)
	e.GET("/rooms/:id", rooms.Get, cache)
	e.POST("/rooms", rooms.Create, auth)
	e.PUT("/rooms/:id", rooms.Update, auth)
	e.DELETE("/rooms/:id", rooms.Delete, auth)

	// Locations: same pattern as rooms.
	e.GET("/locations", locations.List, cache)
	e.GET("/locations/:id", locations.Get, cache)
	e.POST("/locations", locations.Create, auth)
	e.PUT("/locations/:id", locations.Update, auth)
	e.DELETE("/locations/:id", locations.Delete, auth)

	// Reservations: every method requires authentication, reads included.
	r := e.Group("/reservations", auth)
	r.GET("", reservations.List)
	r.GET("/:id", reservations.Get)
	r.POST("", reservations.Create)
	r.PUT("/:id", reservations.Update)
	r.DELETE("/:id", reservations.Delete)

	// Users belong to the auth service scope; every method is gated.
	u := e.Group("/users", auth)
	u.GET("", users.List)
	u.GET("/:id", users.Get)
	u.POST("", users.Create)
	u.PUT("/:id", users.Update)
	u.DELETE("/:id", users.Delete)
}
