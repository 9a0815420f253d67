package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ourkidney/api-backend/internal/models"
	"github.com/ourkidney/api-backend/internal/repositories"
)

// MissionVisionHandler handles HTTP requests for mission/vision statements
type MissionVisionHandler struct {
	statementRepo *repositories.MissionVisionRepository
}

// NewMissionVisionHandler creates a new mission/vision handler
func NewMissionVisionHandler(statementRepo *repositories.MissionVisionRepository) *MissionVisionHandler {
	return &MissionVisionHandler{statementRepo: statementRepo}
}

// StatementRequest is the create payload
type StatementRequest struct {
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// StatementUpdateRequest is the update payload. Only the description of an
// existing statement can change; its type is fixed at creation.
type StatementUpdateRequest struct {
	Description string `json:"description" binding:"required"`
}

// List handles GET /api/mission-vision
// @Summary List mission and vision statements
// @Tags mission-vision
// @Produce json
// @Success 200 {array} models.MissionVision
// @Router /api/mission-vision [get]
func (h *MissionVisionHandler) List(c *gin.Context) {
	statements, err := h.statementRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch statements"})
		return
	}

	c.JSON(http.StatusOK, statements)
}

// Create handles POST /api/mission-vision
// @Summary Create a mission or vision statement
// @Tags mission-vision
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param request body StatementRequest true "Statement fields"
// @Success 200 {object} models.MissionVision
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Router /api/mission-vision [post]
func (h *MissionVisionHandler) Create(c *gin.Context) {
	var req StatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing fields", Message: err.Error()})
		return
	}

	statementType := strings.ToLower(strings.TrimSpace(req.Type))
	if !models.IsValidStatementType(statementType) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Type must be mission or vision"})
		return
	}

	statement := &models.MissionVision{
		Type:        statementType,
		Description: req.Description,
	}
	if err := h.statementRepo.Create(statement); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create statement"})
		return
	}

	c.JSON(http.StatusOK, statement)
}

// Update handles PUT /api/mission-vision/:id
// @Summary Update a statement description
// @Tags mission-vision
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param id path int true "Statement ID"
// @Param request body StatementUpdateRequest true "New description"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/mission-vision/{id} [put]
func (h *MissionVisionHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}

	statement, err := h.statementRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch statement"})
		return
	}
	if statement == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	var req StatementUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing fields", Message: err.Error()})
		return
	}

	if err := h.statementRepo.UpdateDescription(id, req.Description); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update statement"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Delete handles DELETE /api/mission-vision/:id
// @Summary Delete a statement
// @Tags mission-vision
// @Security SessionCookie
// @Produce json
// @Param id path int true "Statement ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/mission-vision/{id} [delete]
func (h *MissionVisionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}

	statement, err := h.statementRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch statement"})
		return
	}
	if statement == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	if err := h.statementRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete statement"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
