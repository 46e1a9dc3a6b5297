package health_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck godoc
// @Summary API health check
// @Tags Health
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Analytics API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
