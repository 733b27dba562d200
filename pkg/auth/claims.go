package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID    string
	Anonymous bool
}

// AccessTokenClaims represents the typed JWT issued to clients. The token
// only names the identity; the session store stays the source of truth and
// a token whose subject is no longer the active session is rejected.
type AccessTokenClaims struct {
	UserID    string `json:"user_id"`
	Anonymous bool   `json:"anonymous,omitempty"`
	jwt.RegisteredClaims
}
