package utils // package utils provides helper functions for token creation and hashing

import (
    "crypto/sha256" // SHA-256 hashing for stored token digests
    "encoding/hex"  // hex encoding for digests
    "time"          // time utilities for expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
    "github.com/google/uuid"       // uuid supplies a unique jti per token
)

// APIToken represents a signed bearer token along with its expiry.  The Raw
// field is handed to the client exactly once; the store only ever sees the
// SHA-256 digest of it.
type APIToken struct {
    Raw string    // the serialized token string
    Exp time.Time // the UTC expiration time
}

// NewAPIToken builds and signs an HS256 bearer token for a user.  The token
// carries standard claims: subject (sub), a unique token id (jti),
// expiration (exp) and issued at (iat).  Signature validity alone does not
// grant access; the gate also checks the digest against the store, which is
// what makes revocation possible.
func NewAPIToken(secret, userID string, ttlDays int) (APIToken, error) {
    exp := time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour)
    claims := jwt.MapClaims{
        "sub": userID,
        "jti": uuid.NewString(),
        "exp": exp.Unix(),
        "iat": time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return APIToken{}, err
    }
    return APIToken{Raw: signed, Exp: exp}, nil
}

// HashToken returns the SHA-256 hash of a raw bearer token as a hex string.
// Storing only the hash prevents attackers from using stolen database rows
// to authenticate.
func HashToken(raw string) string {
    sum := sha256.Sum256([]byte(raw))
    return hex.EncodeToString(sum[:])
}
