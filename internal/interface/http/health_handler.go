package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roni9843/sonakanda-backend/pkg/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Health handles GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, "Sonakanda backend API is running", nil)
}
