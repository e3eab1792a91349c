// Command tokengen mints an API bearer token for an existing user and stores
// its SHA-256 digest in the api_tokens table.  The raw token is printed once
// and never persisted; operators hand it to the client out of band.  The API
// itself only validates tokens, it never issues them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/database"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

func main() {
	userID := flag.String("user", "", "id of the user the token authenticates as")
	days := flag.Int("days", 0, "token lifetime in days (default TOKEN_TTL_DAYS)")
	flag.Parse()

	if *userID == "" {
		log.Fatal("usage: tokengen -user <user-id> [-days N]")
	}

	_ = godotenv.Load()
	cfg := config.Load()
	if *days <= 0 {
		*days = cfg.TokenTTLDays
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Refuse to mint tokens for principals that do not exist.
	users := repository.NewUserRepo(db)
	u, err := users.Get(ctx, *userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Fatalf("no user with id %s", *userID)
		}
		log.Fatalf("lookup user: %v", err)
	}

	tok, err := utils.NewAPIToken(cfg.TokenSecret, u.ID, *days)
	if err != nil {
		log.Fatalf("mint token: %v", err)
	}
	tokens := repository.NewTokenRepo(db)
	if err := tokens.Store(ctx, u.ID, utils.HashToken(tok.Raw), tok.Exp); err != nil {
		log.Fatalf("store token: %v", err)
	}

	fmt.Printf("token for %s (%s), valid until %s:\n%s\n",
		u.Name, u.Email, tok.Exp.Format(time.RFC3339), tok.Raw)
}
