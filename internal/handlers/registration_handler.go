package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/ourkidney/api-backend/internal/models"
	"github.com/ourkidney/api-backend/internal/repositories"
	"github.com/ourkidney/api-backend/internal/validators"
)

// RegistrationHandler handles membership-registration submissions.
// Submission is public; the listing is admin only.
type RegistrationHandler struct {
	registrationRepo *repositories.RegistrationRepository
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationRepo *repositories.RegistrationRepository) *RegistrationHandler {
	return &RegistrationHandler{registrationRepo: registrationRepo}
}

// RegistrationRequest is the membership form payload
type RegistrationRequest struct {
	FullName        string `json:"fullName"`
	DateOfBirth     string `json:"dateOfBirth"`
	Email           string `json:"email"`
	MobileNumber    string `json:"mobileNumber"`
	Gender          string `json:"gender"`
	Occupation      string `json:"occupation"`
	IDType          string `json:"idType"`
	IDNumber        string `json:"idNumber"`
	IssuedAuthority string `json:"issuedAuthority"`
	IssuedPlace     string `json:"issuedPlace"`
	IssuedDate      string `json:"issuedDate"`
	ExpiryDate      string `json:"expiryDate"`
}

// Create handles POST /api/registrations
// @Summary Submit a membership registration
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body RegistrationRequest true "Membership form"
// @Success 201 {object} models.Registration
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Router /api/registrations [post]
func (h *RegistrationHandler) Create(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	input := validators.RegistrationInput{
		FullName:        req.FullName,
		DateOfBirth:     req.DateOfBirth,
		Email:           req.Email,
		MobileNumber:    req.MobileNumber,
		Gender:          req.Gender,
		Occupation:      req.Occupation,
		IDType:          req.IDType,
		IDNumber:        req.IDNumber,
		IssuedAuthority: req.IssuedAuthority,
		IssuedPlace:     req.IssuedPlace,
		IssuedDate:      req.IssuedDate,
		ExpiryDate:      req.ExpiryDate,
	}
	dates, err := validators.ValidateRegistration(&input)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	registration := &models.Registration{
		FullName:        req.FullName,
		DateOfBirth:     datatypes.Date(dates.DateOfBirth),
		Email:           req.Email,
		MobileNumber:    req.MobileNumber,
		Gender:          req.Gender,
		Occupation:      req.Occupation,
		IDType:          req.IDType,
		IDNumber:        req.IDNumber,
		IssuedAuthority: req.IssuedAuthority,
		IssuedPlace:     req.IssuedPlace,
		IssuedDate:      datatypes.Date(dates.IssuedDate),
		ExpiryDate:      datatypes.Date(dates.ExpiryDate),
	}
	if err := h.registrationRepo.Create(registration); err != nil {
		logrus.Errorf("Failed to store registration: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit registration"})
		return
	}

	logrus.Infof("New membership registration from %s", registration.Email)
	c.JSON(http.StatusCreated, registration)
}

// List handles GET /api/registrations
// @Summary List membership registrations
// @Tags registrations
// @Security SessionCookie
// @Produce json
// @Success 200 {array} models.Registration
// @Router /api/registrations [get]
func (h *RegistrationHandler) List(c *gin.Context) {
	registrations, err := h.registrationRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch registrations"})
		return
	}

	c.JSON(http.StatusOK, registrations)
}
