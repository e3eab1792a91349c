package config

// Redis backs the response cache for the public browse routes.  Connection
// settings follow the same load-from-environment pattern as Config and
// CacheConfig; if the server cannot be reached at startup, NewRedisClient
// returns nil and callers degrade gracefully by serving every request from
// the primary store.

import (
    "context"
    "crypto/tls"
    "os"
    "strings"
    "time"

    "github.com/redis/go-redis/v9"
)

// RedisConfig holds the connection settings for the cache server.
type RedisConfig struct {
    Addr     string // host:port of the Redis server
    Password string // optional password
    DB       int    // database number
    TLS      bool   // dial with TLS when true
}

// LoadRedisConfig reads environment variables to build a RedisConfig.
// REDIS_HOST/REDIS_PORT take precedence over the REDIS_ADDR shorthand; with
// neither set the local default applies.  REDIS_PASSWORD, REDIS_DB and
// REDIS_TLS are optional.
func LoadRedisConfig() RedisConfig {
    addr := os.Getenv("REDIS_ADDR")
    host := os.Getenv("REDIS_HOST")
    port := os.Getenv("REDIS_PORT")
    if host != "" && port != "" {
        addr = host + ":" + port
    }
    if addr == "" {
        addr = "localhost:6379"
    }
    tlsEnv := os.Getenv("REDIS_TLS")
    return RedisConfig{
        Addr:     addr,
        Password: os.Getenv("REDIS_PASSWORD"),
        DB:       atoi(getenv("REDIS_DB", "0")),
        TLS:      strings.EqualFold(tlsEnv, "true") || tlsEnv == "1",
    }
}

// NewRedisClient connects to Redis using the supplied configuration.  The
// returned client may be nil if a connection cannot be established.
func NewRedisClient(cfg RedisConfig) *redis.Client {
    var tlsConf *tls.Config
    if cfg.TLS {
        tlsConf = &tls.Config{InsecureSkipVerify: true}
    }
    client := redis.NewClient(&redis.Options{
        Addr:      cfg.Addr,
        Password:  cfg.Password,
        DB:        cfg.DB,
        TLSConfig: tlsConf,
    })
    // Ping the server with a short timeout.  Return nil on failure.
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil
    }
    return client
}
