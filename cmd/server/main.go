package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/database"
	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/router"
	queue_publisher "github.com/iliyamo/hotel-reservation/internal/service"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// The store client is constructed here and injected downwards; no
	// package-level state owns it.
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	roomRepo := repository.NewRoomRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	reservationRepo := repository.NewReservationRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	// Publish reservation events off the request path; a broker outage must
	// never fail the create that triggered it.
	onReservation := func(r repository.Reservation) {
		ev := queue.ReservationCreatedEvent{
			ReservationID: r.ID,
			UserID:        r.UserID,
			RoomID:        r.RoomID,
			CheckIn:       r.CheckIn,
			CheckOut:      r.CheckOut,
			CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = queue_publisher.PublishReservationCreated(ctx, ev)
		}()
	}

	rooms := handler.NewRoomResource(roomRepo)
	locations := handler.NewLocationResource(locationRepo)
	reservations := handler.NewReservationResource(reservationRepo, onReservation)
	users := handler.NewUserResource(userRepo)

	auth := middleware.Auth(cfg.TokenSecret, tokenRepo)
	cache := middleware.Cache(config.LoadCacheConfig(), config.NewRedisClient(config.LoadRedisConfig()))

	// Background consumer appends created reservations to logs/reservation.log.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e, rooms, locations, reservations, users, auth, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
