package utils // package utils provides helpers for admin tokens and passphrase hashing

import (
    "time"

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AdminToken represents a signed JWT granting access to the admin
// endpoints, along with its expiry.  There is a single administrative
// identity: whoever presents the shared passphrase receives one of
// these short-lived tokens instead of re-sending the passphrase on
// every request.
type AdminToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewAdminToken builds and signs an HS256 JWT for the administrator.
// The JWT carries standard claims: subject (sub), role, expiration
// (exp) and issued at (iat).  ttlMin controls the token lifetime in
// minutes.
func NewAdminToken(secret string, ttlMin int) (AdminToken, error) {
    exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "sub":  "admin",
        "role": "admin",
        "exp":  exp.Unix(),
        "iat":  time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AdminToken{}, err
    }
    return AdminToken{Token: signed, Exp: exp}, nil
}
