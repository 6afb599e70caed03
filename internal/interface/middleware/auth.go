package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/roni9843/sonakanda-backend/pkg/helpers"
	"github.com/roni9843/sonakanda-backend/pkg/response"
)

// CtxUserIDKey is the gin context key holding the authenticated user id.
const CtxUserIDKey = "userID"

const bearerPrefix = "Bearer "

// Auth extracts the bearer token from the Authorization header, verifies
// signature and expiry, and injects the user id into the context. It never
// touches the store; existence is re-checked by the profile handler.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			response.AbortError(c, http.StatusUnauthorized, "Authorization token missing", nil)
			return
		}
		claims, err := jwt.ParseToken(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
