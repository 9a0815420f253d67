package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ourkidney/api-backend/internal/services"
	"github.com/ourkidney/api-backend/internal/validators"
)

// ContactHandler forwards contact-form submissions to the association
// inbox by email.
type ContactHandler struct {
	mailer       services.Mailer
	contactEmail string
}

// NewContactHandler creates a new contact handler. contactEmail is the
// inbox that receives forwarded messages.
func NewContactHandler(mailer services.Mailer, contactEmail string) *ContactHandler {
	return &ContactHandler{mailer: mailer, contactEmail: contactEmail}
}

// ContactRequest is the contact-form payload
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Submit handles POST /api/contact
// @Summary Submit a contact-form message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact message"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Router /api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing fields", Message: err.Error()})
		return
	}
	if !validators.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid email address"})
		return
	}

	err := h.mailer.SendContactMessage(c.Request.Context(), h.contactEmail, req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		logrus.Errorf("Failed to forward contact message: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Message sent."})
}
