package ds

import (
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// SessionClaims binds a bearer token to an anonymous browsing session.
type SessionClaims struct {
	jwt.StandardClaims
	SessionID uuid.UUID `json:"session_id"`
}
