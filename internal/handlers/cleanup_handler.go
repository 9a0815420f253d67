package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ourkidney/api-backend/internal/services"
)

// CleanupHandler handles HTTP requests for maintenance cleanup
type CleanupHandler struct {
	cleanupService *services.CleanupService
}

// NewCleanupHandler creates a new cleanup handler
func NewCleanupHandler(cleanupService *services.CleanupService) *CleanupHandler {
	return &CleanupHandler{
		cleanupService: cleanupService,
	}
}

// CleanupResponse represents the response from cleanup operation
type CleanupResponse struct {
	Message string `json:"message" example:"Cleanup completed successfully"`
}

// RunCleanup handles POST /api/admin/maintenance/cleanup
// @Summary Purge expired password-reset tokens
// @Description Manually trigger the cleanup that otherwise runs on a daily schedule
// @Tags admin-maintenance
// @Security SessionCookie
// @Produce json
// @Success 200 {object} CleanupResponse "Cleanup completed successfully"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/admin/maintenance/cleanup [post]
func (h *CleanupHandler) RunCleanup(c *gin.Context) {
	h.cleanupService.RunCleanupNow()

	c.JSON(http.StatusOK, CleanupResponse{
		Message: "Cleanup completed successfully",
	})
}
