package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ourkidney/api-backend/internal/models"
	"github.com/ourkidney/api-backend/internal/repositories"
)

// FAQHandler handles HTTP requests for FAQ entries
type FAQHandler struct {
	faqRepo *repositories.FAQRepository
}

// NewFAQHandler creates a new FAQ handler
func NewFAQHandler(faqRepo *repositories.FAQRepository) *FAQHandler {
	return &FAQHandler{faqRepo: faqRepo}
}

// FAQRequest is the create/update payload
type FAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// List handles GET /api/faq
// @Summary List FAQ entries, newest first
// @Tags faq
// @Produce json
// @Success 200 {array} models.FAQ
// @Router /api/faq [get]
func (h *FAQHandler) List(c *gin.Context) {
	faqs, err := h.faqRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch faqs"})
		return
	}

	c.JSON(http.StatusOK, faqs)
}

// Get handles GET /api/faq/:id
// @Summary Fetch one FAQ entry
// @Tags faq
// @Produce json
// @Param id path int true "FAQ ID"
// @Success 200 {object} models.FAQ
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/faq/{id} [get]
func (h *FAQHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}

	faq, err := h.faqRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch faq"})
		return
	}
	if faq == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	c.JSON(http.StatusOK, faq)
}

// Create handles POST /api/faq
// @Summary Create a FAQ entry
// @Tags faq
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param request body FAQRequest true "Question and answer"
// @Success 200 {object} models.FAQ
// @Failure 400 {object} ErrorResponse "Missing fields"
// @Router /api/faq [post]
func (h *FAQHandler) Create(c *gin.Context) {
	var req FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing fields"})
		return
	}

	faq := &models.FAQ{Question: req.Question, Answer: req.Answer}
	if err := h.faqRepo.Create(faq); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create faq"})
		return
	}

	c.JSON(http.StatusOK, faq)
}

// Update handles PUT /api/faq/:id
// @Summary Update a FAQ entry
// @Tags faq
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param id path int true "FAQ ID"
// @Param request body FAQRequest true "Question and answer"
// @Success 200 {object} models.FAQ
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/faq/{id} [put]
func (h *FAQHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}

	var req FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing fields"})
		return
	}

	faq := &models.FAQ{ID: id, Question: req.Question, Answer: req.Answer}
	if err := h.faqRepo.Update(faq); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	updated, err := h.faqRepo.FindByID(id)
	if err != nil || updated == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch faq"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/faq/:id
// @Summary Delete a FAQ entry
// @Tags faq
// @Security SessionCookie
// @Produce json
// @Param id path int true "FAQ ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/faq/{id} [delete]
func (h *FAQHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}

	if err := h.faqRepo.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
