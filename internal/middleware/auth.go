package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "context"  // context carries the per-request deadline into the store lookup
    "errors"   // errors is used for sentinel comparisons
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming
    "time"     // timeout for the store lookup

    "github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
    "github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/hotel-reservation/internal/repository"
    "github.com/iliyamo/hotel-reservation/internal/utils"
)

// TokenValidator resolves a token digest to the user id it belongs to.  It is
// satisfied by *repository.TokenRepo and faked in tests.
type TokenValidator interface {
    Validate(ctx context.Context, tokenHash string) (string, error)
}

// Auth returns an Echo middleware that validates a Bearer token and injects
// the resolved principal into the request context under "user_id".  A request
// is authenticated only when both checks pass: the token signature verifies
// against the secret, and the token's digest resolves to an active row in the
// store's api_tokens table.  Each request is verified independently; nothing
// is cached between requests.
//
// Missing or malformed header, bad signature, and unknown/revoked/expired
// tokens all yield 401 and the wrapped handler never runs.  A store failure
// during the lookup yields 500.
func Auth(secret string, tokens TokenValidator) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Read the Authorization header.  A valid header starts with
            // "Bearer " followed by the token.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
            if raw == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }

            // Check the signature first so forged tokens never reach the
            // store.  The callback pins the signing method to HMAC.
            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            // Resolve the principal through the store so revoked tokens stop
            // working even before their exp claim passes.
            ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
            defer cancel()
            userID, err := tokens.Validate(ctx, utils.HashToken(raw))
            if err != nil {
                if errors.Is(err, repository.ErrNotFound) {
                    return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
                }
                c.Logger().Errorf("auth: token lookup failed: %v", err)
                return c.JSON(http.StatusInternalServerError, echo.Map{"error": "authentication check failed"})
            }

            // Attach the principal; handlers only require that it exists, no
            // per-resource ownership is enforced.
            c.Set("user_id", userID)
            return next(c)
        }
    }
}
