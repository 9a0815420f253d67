package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ourkidney/api-backend/internal/models"
	"github.com/ourkidney/api-backend/internal/repositories"
)

// DonationMethodHandler handles HTTP requests for donation methods.
// Unlike the other content endpoints, updates and deletes address the
// record through an ?id= query parameter on the collection path.
type DonationMethodHandler struct {
	methodRepo *repositories.DonationMethodRepository
}

// NewDonationMethodHandler creates a new donation method handler
func NewDonationMethodHandler(methodRepo *repositories.DonationMethodRepository) *DonationMethodHandler {
	return &DonationMethodHandler{methodRepo: methodRepo}
}

// DonationMethodRequest is the create/update payload
type DonationMethodRequest struct {
	AccountName   string `json:"accountName" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	LogoURL       string `json:"logoUrl"`
}

// parseIDQuery reads the record ID from the ?id= query parameter.
func parseIDQuery(c *gin.Context) (uint, bool) {
	raw := c.Query("id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// List handles GET /api/donation-methods
// @Summary List donation methods
// @Tags donation-methods
// @Produce json
// @Success 200 {array} models.DonationMethod
// @Router /api/donation-methods [get]
func (h *DonationMethodHandler) List(c *gin.Context) {
	methods, err := h.methodRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch donation methods"})
		return
	}

	c.JSON(http.StatusOK, methods)
}

// Create handles POST /api/donation-methods
// @Summary Create a donation method
// @Tags donation-methods
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param request body DonationMethodRequest true "Donation method fields"
// @Success 201 {object} models.DonationMethod
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Router /api/donation-methods [post]
func (h *DonationMethodHandler) Create(c *gin.Context) {
	var req DonationMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing fields", Message: err.Error()})
		return
	}
	if req.LogoURL == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Logo URL is required"})
		return
	}

	method := &models.DonationMethod{
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		LogoURL:       req.LogoURL,
	}
	if err := h.methodRepo.Create(method); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create donation method"})
		return
	}

	c.JSON(http.StatusCreated, method)
}

// Update handles PUT /api/donation-methods?id=N
// @Summary Update a donation method
// @Tags donation-methods
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param id query int true "Donation method ID"
// @Param request body DonationMethodRequest true "Donation method fields"
// @Success 200 {object} models.DonationMethod
// @Failure 400 {object} ErrorResponse "Missing or invalid id"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/donation-methods [put]
func (h *DonationMethodHandler) Update(c *gin.Context) {
	id, ok := parseIDQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing or invalid id"})
		return
	}

	method, err := h.methodRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch donation method"})
		return
	}
	if method == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	var req DonationMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing fields", Message: err.Error()})
		return
	}
	if req.LogoURL == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Logo URL is required"})
		return
	}

	method.AccountName = req.AccountName
	method.AccountNumber = req.AccountNumber
	method.LogoURL = req.LogoURL

	if err := h.methodRepo.Update(method); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update donation method"})
		return
	}

	c.JSON(http.StatusOK, method)
}

// Delete handles DELETE /api/donation-methods?id=N
// @Summary Delete a donation method
// @Tags donation-methods
// @Security SessionCookie
// @Produce json
// @Param id query int true "Donation method ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid id"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/donation-methods [delete]
func (h *DonationMethodHandler) Delete(c *gin.Context) {
	id, ok := parseIDQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing or invalid id"})
		return
	}

	method, err := h.methodRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch donation method"})
		return
	}
	if method == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	if err := h.methodRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete donation method"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
