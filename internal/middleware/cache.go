package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "fmt"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/hotel-reservation/internal/config"
)

// bodyCapture duplicates the response body into a buffer while forwarding it
// to the client, so successful payloads can be stored after the handler ran.
// Once a response grows past the limit the capture is abandoned for good;
// spilled stays set so later chunks cannot refill the buffer with a
// truncated tail.
type bodyCapture struct {
    http.ResponseWriter
    status  int
    buf     bytes.Buffer
    limit   int
    spilled bool
}

func (w *bodyCapture) WriteHeader(code int) {
    w.status = code
    w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
    if !w.spilled {
        if w.limit > 0 && w.buf.Len()+len(b) > w.limit {
            w.buf.Reset()
            w.spilled = true
        } else {
            w.buf.Write(b)
        }
    }
    return w.ResponseWriter.Write(b)
}

// cacheKey builds a stable key from method, route and query string, hashed so
// arbitrary query input cannot grow unbounded Redis keys.
func cacheKey(prefix string, c echo.Context) string {
    r := c.Request()
    sum := sha1.Sum([]byte(r.Method + " " + c.Path() + "?" + r.URL.RawQuery))
    return fmt.Sprintf("%s:%x", prefix, sum)
}

// Cache returns an Echo middleware that serves GET responses from Redis for
// the configured TTL.  Only 200 responses are stored.  When caching is
// disabled or the Redis client is nil the middleware is a no-op, so the
// router can apply it unconditionally.  Stale reads within the TTL after a
// write are accepted; the store remains the source of truth.
func Cache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }
    ttl := cfg.TTL
    if ttl <= 0 {
        ttl = 30 * time.Second
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if c.Request().Method != http.MethodGet {
                return next(c)
            }

            key := cacheKey(cfg.Prefix, c)
            ctx := c.Request().Context()

            if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
                c.Response().Header().Set("X-Cache", "HIT")
                return c.JSONBlob(http.StatusOK, body)
            }

            cw := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
            c.Response().Writer = cw
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }

            if cw.status == http.StatusOK && !cw.spilled && cw.buf.Len() > 0 {
                // Detached context: the entry should land even if the client
                // disconnected right after receiving the response.
                _ = rdb.SetEx(context.Background(), key, cw.buf.Bytes(), ttl).Err()
            }
            return nil
        }
    }
}
