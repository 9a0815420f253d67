package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ourkidney/api-backend/internal/models"
	"github.com/ourkidney/api-backend/internal/repositories"
	"github.com/ourkidney/api-backend/internal/services"
	"github.com/ourkidney/api-backend/internal/validators"
)

// SlideHandler handles HTTP requests for hero slides
type SlideHandler struct {
	slideRepo *repositories.SlideRepository
	uploads   *services.UploadService
}

// NewSlideHandler creates a new slide handler
func NewSlideHandler(slideRepo *repositories.SlideRepository, uploads *services.UploadService) *SlideHandler {
	return &SlideHandler{
		slideRepo: slideRepo,
		uploads:   uploads,
	}
}

// List handles GET /api/slide
// @Summary List hero slides, newest first
// @Tags slides
// @Produce json
// @Success 200 {array} models.Slide
// @Router /api/slide [get]
func (h *SlideHandler) List(c *gin.Context) {
	slides, err := h.slideRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch slides"})
		return
	}

	c.JSON(http.StatusOK, slides)
}

// Create handles POST /api/slide (multipart: title, description, optional image)
// @Summary Create a slide
// @Tags slides
// @Security SessionCookie
// @Accept mpfd
// @Produce json
// @Success 200 {object} models.Slide
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Router /api/slide [post]
func (h *SlideHandler) Create(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")

	if err := validators.ValidateSlide(title, description); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	slide := &models.Slide{Title: title, Description: description}

	if file, err := c.FormFile("image"); err == nil && file.Size > 0 {
		path, err := h.uploads.Save(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save image"})
			return
		}
		slide.Image = &path
	}

	if err := h.slideRepo.Create(slide); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create slide"})
		return
	}

	c.JSON(http.StatusOK, slide)
}

// Update handles PUT /api/slide/:id
// @Summary Update a slide
// @Tags slides
// @Security SessionCookie
// @Accept mpfd
// @Produce json
// @Param id path int true "Slide ID"
// @Success 200 {object} models.Slide
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/slide/{id} [put]
func (h *SlideHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}

	slide, err := h.slideRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch slide"})
		return
	}
	if slide == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	if err := validators.ValidateSlide(title, description); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	slide.Title = title
	slide.Description = description

	if file, err := c.FormFile("image"); err == nil && file.Size > 0 {
		path, err := h.uploads.Save(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save image"})
			return
		}
		if slide.Image != nil {
			h.uploads.Remove(*slide.Image)
		}
		slide.Image = &path
	}

	if err := h.slideRepo.Update(slide); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update slide"})
		return
	}

	c.JSON(http.StatusOK, slide)
}

// Delete handles DELETE /api/slide/:id
// @Summary Delete a slide and its image
// @Tags slides
// @Security SessionCookie
// @Produce json
// @Param id path int true "Slide ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/slide/{id} [delete]
func (h *SlideHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}

	slide, err := h.slideRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch slide"})
		return
	}
	if slide == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	if err := h.slideRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete slide"})
		return
	}

	if slide.Image != nil {
		h.uploads.Remove(*slide.Image)
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
