package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portal/internal/app/ds"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionRouter(sm *SessionMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", sm.WithSession(), func(c *gin.Context) {
		id, ok := GetSessionID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id)
	})
	return r
}

func call(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWithSession(t *testing.T) {
	sm := NewSessionMiddleware([]byte("secret"), time.Hour)
	r := sessionRouter(sm)
	id := uuid.NewString()

	token, err := sm.IssueToken(id)
	require.NoError(t, err)

	for _, header := range []string{"Bearer " + token, token} {
		w := call(r, header)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id, w.Body.String())
	}
}

func TestWithSessionRejects(t *testing.T) {
	sm := NewSessionMiddleware([]byte("secret"), time.Hour)
	r := sessionRouter(sm)

	other, err := NewSessionMiddleware([]byte("other"), time.Hour).IssueToken(uuid.NewString())
	require.NoError(t, err)
	expired, err := NewSessionMiddleware([]byte("secret"), -time.Minute).IssueToken(uuid.NewString())
	require.NoError(t, err)
	noSession, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &ds.SessionClaims{}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"missing":      "",
		"garbage":      "Bearer not-a-token",
		"wrong secret": "Bearer " + other,
		"expired":      "Bearer " + expired,
		"no session":   "Bearer " + noSession,
	}
	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			w := call(r, header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"status":"fail"`)
		})
	}
}

func TestIssueTokenRejectsBadID(t *testing.T) {
	_, err := NewSessionMiddleware([]byte("secret"), time.Hour).IssueToken("not-a-uuid")
	assert.Error(t, err)
}

func TestLanguageMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LanguageMiddleware())
	r.GET("/lang", func(c *gin.Context) { c.String(http.StatusOK, GetLanguage(c)) })

	req := httptest.NewRequest(http.MethodGet, "/lang", nil)
	req.Header.Set("Accept-Language", "sw-KE,sw;q=0.9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "sw", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/lang", nil))
	assert.Equal(t, "en", w.Body.String())
}
