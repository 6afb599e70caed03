package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roni9843/sonakanda-backend/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func gatedRouter(jwt *helpers.JWTManager, reached *bool) *gin.Engine {
	r := gin.New()
	r.GET("/protected", Auth(jwt), func(c *gin.Context) {
		*reached = true
		c.String(http.StatusOK, c.GetString(CtxUserIDKey))
	})
	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMissingHeader(t *testing.T) {
	jwt := helpers.NewJWTManager("testsecret", time.Hour)
	reached := false
	r := gatedRouter(jwt, &reached)

	for _, header := range []string{"", "Token abc", "bearer lowercase-prefix"} {
		w := get(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization token missing")
	}
	assert.False(t, reached, "handler must not run without a bearer token")
}

func TestAuthInvalidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("testsecret", time.Hour)
	reached := false
	r := gatedRouter(jwt, &reached)

	w := get(r, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
	assert.False(t, reached)
}

func TestAuthExpiredToken(t *testing.T) {
	expired := helpers.NewJWTManager("testsecret", -time.Minute)
	token, _, err := expired.GenerateToken("user-1")
	require.NoError(t, err)

	reached := false
	r := gatedRouter(helpers.NewJWTManager("testsecret", time.Hour), &reached)

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
	assert.False(t, reached)
}

func TestAuthValidTokenInjectsUserID(t *testing.T) {
	jwt := helpers.NewJWTManager("testsecret", time.Hour)
	token, _, err := jwt.GenerateToken("user-42")
	require.NoError(t, err)

	reached := false
	r := gatedRouter(jwt, &reached)

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
	assert.Equal(t, "user-42", w.Body.String())
}
