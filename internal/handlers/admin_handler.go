package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ourkidney/api-backend/internal/middleware"
	"github.com/ourkidney/api-backend/internal/services"
)

// AdminHandler handles account-settings requests for the authenticated admin
type AdminHandler struct {
	authService *services.AuthService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(authService *services.AuthService) *AdminHandler {
	return &AdminHandler{
		authService: authService,
	}
}

// ChangeEmailRequest is the change-email payload
type ChangeEmailRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// MeResponse carries the authenticated admin's profile
type MeResponse struct {
	Email string `json:"email"`
}

// Me handles GET /api/admin/me
// @Summary Current admin profile
// @Tags admin
// @Security SessionCookie
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Admin not found"
// @Router /api/admin/me [get]
func (h *AdminHandler) Me(c *gin.Context) {
	id, ok := middleware.AdminID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	admin, err := h.authService.GetAdmin(id)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Admin not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load admin"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{Email: admin.Email})
}

// ChangeEmail handles POST /api/admin/change-email
// @Summary Change the admin login email
// @Description Updates the login email after re-verifying the current password.
// @Tags admin
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param request body ChangeEmailRequest true "New email and current password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 401 {object} ErrorResponse "Wrong password"
// @Router /api/admin/change-email [post]
func (h *AdminHandler) ChangeEmail(c *gin.Context) {
	id, ok := middleware.AdminID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req ChangeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}

	if err := h.authService.ChangeEmail(id, req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Wrong password"})
		case errors.Is(err, services.ErrAdminNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Admin not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update email"})
		}
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Email updated successfully."})
}
