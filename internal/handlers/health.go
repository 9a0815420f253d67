package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ourkidney/api-backend/internal/models"
)

// PingHandler handles the /ping endpoint for health checks
func PingHandler(c *gin.Context) {
	response := models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Service:   "ourkidney-api",
	}

	c.JSON(http.StatusOK, response)
}
