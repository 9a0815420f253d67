package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ourkidney/api-backend/internal/crypto"
	"github.com/ourkidney/api-backend/internal/middleware"
	"github.com/ourkidney/api-backend/internal/services"
)

// AuthHandler handles HTTP requests for admin authentication and the
// password-reset flow
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"correct"`
}

// ForgotPasswordRequest is the reset-request payload
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"admin@example.com"`
}

// ResetPasswordRequest is the reset-consume payload
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8" example:"newpass123"`
}

// Login handles POST /api/auth/login
// @Summary Admin login
// @Description Exchange email and password for a session cookie. The cookie is HttpOnly, site-wide, and expires with the embedded token after 1 hour.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} SuccessResponse "Login successful, session cookie set"
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 401 {object} MessageResponse "Invalid credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}

	token, _, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Same body for unknown email and wrong password
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		return
	}

	c.SetCookie(
		middleware.SessionCookieName,
		token,
		int(crypto.SessionJWTExpiration.Seconds()),
		"/",
		"",    // current domain
		false, // Secure is left to the TLS terminator in front of gin
		true,  // HttpOnly
	)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Logout handles POST /api/auth/logout
// @Summary Admin logout
// @Description Clears the session cookie. The token itself is stateless and remains valid until its embedded expiry; logout only removes the client's copy.
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// ForgotPassword handles POST /api/auth/forgot-password
// @Summary Request a password reset
// @Description Stores a single-use reset token valid for 1 hour and emails a reset link. The response is identical whether or not the email exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} MessageResponse "Reset link dispatched (or silently skipped for unknown email)"
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 500 {object} ErrorResponse "Email delivery failed"
// @Router /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}

	if err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		// Token may already be persisted at this point; the next
		// request overwrites it
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to send reset email"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Reset link sent."})
}

// ResetPassword handles POST /api/auth/reset-password/:token
// @Summary Consume a password-reset token
// @Description Sets a new password if the token matches a pending reset and has not expired. Tokens are single use.
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token from the emailed link"
// @Param request body ResetPasswordRequest true "New password"
// @Success 200 {object} MessageResponse "Password replaced"
// @Failure 400 {object} ErrorResponse "Invalid or expired token"
// @Router /api/auth/reset-password/{token} [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.Param("token")

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}

	if err := h.authService.ResetPassword(token, req.Password); err != nil {
		if errors.Is(err, services.ErrInvalidOrExpiredToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token."})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Something went wrong."})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Password has been reset. You can now log in."})
}
