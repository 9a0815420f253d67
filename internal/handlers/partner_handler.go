package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ourkidney/api-backend/internal/models"
	"github.com/ourkidney/api-backend/internal/repositories"
	"github.com/ourkidney/api-backend/internal/services"
)

// PartnerHandler handles HTTP requests for partner organisations
type PartnerHandler struct {
	partnerRepo *repositories.PartnerRepository
	uploads     *services.UploadService
}

// NewPartnerHandler creates a new partner handler
func NewPartnerHandler(partnerRepo *repositories.PartnerRepository, uploads *services.UploadService) *PartnerHandler {
	return &PartnerHandler{
		partnerRepo: partnerRepo,
		uploads:     uploads,
	}
}

// List handles GET /api/partner
// @Summary List partners, newest first
// @Tags partners
// @Produce json
// @Success 200 {array} models.Partner
// @Router /api/partner [get]
func (h *PartnerHandler) List(c *gin.Context) {
	partners, err := h.partnerRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch partners"})
		return
	}

	c.JSON(http.StatusOK, partners)
}

// Get handles GET /api/partner/:id
// @Summary Fetch one partner
// @Tags partners
// @Produce json
// @Param id path int true "Partner ID"
// @Success 200 {object} models.Partner
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/partner/{id} [get]
func (h *PartnerHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}

	partner, err := h.partnerRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch partner"})
		return
	}
	if partner == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	c.JSON(http.StatusOK, partner)
}

// Create handles POST /api/partner (multipart: name + logo file, both required)
// @Summary Create a partner
// @Tags partners
// @Security SessionCookie
// @Accept mpfd
// @Produce json
// @Success 200 {object} models.Partner
// @Failure 400 {object} ErrorResponse "Missing name or logo"
// @Router /api/partner [post]
func (h *PartnerHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	logoFile, err := c.FormFile("logo")
	if name == "" || err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing name or logo"})
		return
	}

	logoPath, err := h.uploads.Save(logoFile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save logo"})
		return
	}

	partner := &models.Partner{Name: name, Logo: logoPath}
	if err := h.partnerRepo.Create(partner); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create partner"})
		return
	}

	c.JSON(http.StatusOK, partner)
}

// Update handles PUT /api/partner/:id (multipart: name, optional new
// logo, optional existingLogo to keep the old file)
// @Summary Update a partner
// @Tags partners
// @Security SessionCookie
// @Accept mpfd
// @Produce json
// @Param id path int true "Partner ID"
// @Success 200 {object} models.Partner
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/partner/{id} [put]
func (h *PartnerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}

	partner, err := h.partnerRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch partner"})
		return
	}
	if partner == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing name"})
		return
	}
	partner.Name = name

	if logoFile, err := c.FormFile("logo"); err == nil && logoFile.Size > 0 {
		logoPath, err := h.uploads.Save(logoFile)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save logo"})
			return
		}
		// Remove the replaced file; the form echoes the old path back
		if existing := c.PostForm("existingLogo"); existing != "" {
			h.uploads.Remove(existing)
		}
		partner.Logo = logoPath
	}

	if err := h.partnerRepo.Update(partner); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update partner"})
		return
	}

	c.JSON(http.StatusOK, partner)
}

// Delete handles DELETE /api/partner/:id
// @Summary Delete a partner and its logo
// @Tags partners
// @Security SessionCookie
// @Produce json
// @Param id path int true "Partner ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/partner/{id} [delete]
func (h *PartnerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}

	partner, err := h.partnerRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch partner"})
		return
	}
	if partner == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	if err := h.partnerRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete partner"})
		return
	}

	h.uploads.Remove(partner.Logo)

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
