package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ourkidney/api-backend/internal/models"
	"github.com/ourkidney/api-backend/internal/repositories"
)

// MemberHandler handles HTTP requests for board/branch members
type MemberHandler struct {
	memberRepo *repositories.MemberRepository
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberRepo *repositories.MemberRepository) *MemberHandler {
	return &MemberHandler{memberRepo: memberRepo}
}

// MemberRequest is the create/update payload
type MemberRequest struct {
	Title    string `json:"title"`
	Name     string `json:"name" binding:"required"`
	Position string `json:"position" binding:"required"`
	Type     string `json:"type" binding:"required"`
}

// List handles GET /api/members
// @Summary List association members
// @Tags members
// @Produce json
// @Success 200 {array} models.Member
// @Router /api/members [get]
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.memberRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch members"})
		return
	}

	c.JSON(http.StatusOK, members)
}

// Create handles POST /api/members
// @Summary Create a member
// @Tags members
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param request body MemberRequest true "Member fields"
// @Success 200 {object} models.Member
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Router /api/members [post]
func (h *MemberHandler) Create(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing fields", Message: err.Error()})
		return
	}
	if !models.IsValidMemberType(req.Type) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid member type"})
		return
	}

	member := &models.Member{
		Title:    req.Title,
		Name:     req.Name,
		Position: req.Position,
		Type:     req.Type,
	}
	if err := h.memberRepo.Create(member); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create member"})
		return
	}

	c.JSON(http.StatusOK, member)
}

// Update handles PUT /api/members/:id
// @Summary Update a member
// @Tags members
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param request body MemberRequest true "Member fields"
// @Success 200 {object} models.Member
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/members/{id} [put]
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}

	member, err := h.memberRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch member"})
		return
	}
	if member == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing fields", Message: err.Error()})
		return
	}
	if !models.IsValidMemberType(req.Type) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid member type"})
		return
	}

	member.Title = req.Title
	member.Name = req.Name
	member.Position = req.Position
	member.Type = req.Type

	if err := h.memberRepo.Update(member); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update member"})
		return
	}

	c.JSON(http.StatusOK, member)
}

// Delete handles DELETE /api/members/:id
// @Summary Delete a member
// @Tags members
// @Security SessionCookie
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/members/{id} [delete]
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}

	member, err := h.memberRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch member"})
		return
	}
	if member == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	if err := h.memberRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete member"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
