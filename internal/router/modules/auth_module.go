package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roni9843/sonakanda-backend/internal/container"
	handlers "github.com/roni9843/sonakanda-backend/internal/interface/http"
	"github.com/roni9843/sonakanda-backend/internal/interface/middleware"
	"github.com/roni9843/sonakanda-backend/pkg/helpers"
)

// AuthModule wires the credential workflow into routes.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: GET /api/auth/profile (bearer token)
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with per-IP rate limits; internal callers bypass
	allowInternal := middleware.AllowPrivateIP()
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), allowInternal)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), allowInternal)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/auth/profile", m.Handler.Profile)
	}
}
