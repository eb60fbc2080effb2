package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"portal/internal/app/ds"
	"portal/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const sessionIDKey = "sessionID"

// SessionMiddleware issues and checks the bearer tokens that carry a browsing
// session id. The tokens identify a session, not a person.
type SessionMiddleware struct {
	secret    []byte
	expiresIn time.Duration
}

func NewSessionMiddleware(secret []byte, expiresIn time.Duration) *SessionMiddleware {
	return &SessionMiddleware{
		secret:    secret,
		expiresIn: expiresIn,
	}
}

// IssueToken signs a token for sessionID with HS256.
func (sm *SessionMiddleware) IssueToken(sessionID string) (string, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return "", fmt.Errorf("session id: %w", err)
	}

	now := time.Now()
	claims := &ds.SessionClaims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(sm.expiresIn).Unix(),
			Issuer:    "portal",
		},
		SessionID: id,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sm.secret)
}

// WithSession rejects requests without a valid session token with 401.
func (sm *SessionMiddleware) WithSession() gin.HandlerFunc {
	return gin.HandlerFunc(func(gCtx *gin.Context) {
		jwtStr := gCtx.GetHeader("Authorization")
		if jwtStr == "" {
			gCtx.AbortWithStatusJSON(401, unauthorized("session token required"))
			return
		}

		jwtStr = strings.TrimPrefix(jwtStr, "Bearer ")

		claims, err := sm.parseToken(jwtStr)
		if err != nil {
			gCtx.AbortWithStatusJSON(401, unauthorized("invalid session token"))
			return
		}

		gCtx.Set(sessionIDKey, claims.SessionID.String())
		gCtx.Next()
	})
}

func (sm *SessionMiddleware) parseToken(tokenString string) (*ds.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ds.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return sm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*ds.SessionClaims)
	if !ok || !token.Valid || claims.SessionID == uuid.Nil {
		return nil, errors.New("invalid session claims")
	}
	return claims, nil
}

// GetSessionID returns the session id stored by WithSession.
func GetSessionID(c *gin.Context) (string, bool) {
	id := c.GetString(sessionIDKey)
	return id, id != ""
}

func unauthorized(message string) dto.ErrorResponse {
	return dto.ErrorResponse{Status: "fail", Message: message}
}
