package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ourkidney/api-backend/internal/models"
	"github.com/ourkidney/api-backend/internal/repositories"
	"github.com/ourkidney/api-backend/internal/services"
	"github.com/ourkidney/api-backend/internal/validators"
)

// BlogHandler handles HTTP requests for blog posts
type BlogHandler struct {
	blogRepo *repositories.BlogRepository
	uploads  *services.UploadService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogRepo *repositories.BlogRepository, uploads *services.UploadService) *BlogHandler {
	return &BlogHandler{
		blogRepo: blogRepo,
		uploads:  uploads,
	}
}

// List handles GET /api/blog
// @Summary List blog posts, newest first
// @Tags blog
// @Produce json
// @Success 200 {array} models.BlogPost
// @Router /api/blog [get]
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.blogRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch blog posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/blog/:id
// @Summary Fetch one blog post
// @Tags blog
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/blog/{id} [get]
func (h *BlogHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}

	post, err := h.blogRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch blog post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// Create handles POST /api/blog (multipart: title, content, optional image)
// @Summary Create a blog post
// @Tags blog
// @Security SessionCookie
// @Accept mpfd
// @Produce json
// @Success 200 {object} models.BlogPost
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Router /api/blog [post]
func (h *BlogHandler) Create(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")

	if err := validators.ValidateBlogPost(title, content); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	post := &models.BlogPost{Title: title, Content: content}

	if file, err := c.FormFile("image"); err == nil && file.Size > 0 {
		path, err := h.uploads.Save(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save image"})
			return
		}
		post.Image = &path
	}

	if err := h.blogRepo.Create(post); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create blog post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// Update handles PUT /api/blog/:id (multipart: title, content, optional
// new image; a new image replaces and deletes the old file)
// @Summary Update a blog post
// @Tags blog
// @Security SessionCookie
// @Accept mpfd
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/blog/{id} [put]
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}

	post, err := h.blogRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch blog post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("content")
	if err := validators.ValidateBlogPost(title, content); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	post.Title = title
	post.Content = content

	if file, err := c.FormFile("image"); err == nil && file.Size > 0 {
		path, err := h.uploads.Save(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save image"})
			return
		}
		if post.Image != nil {
			h.uploads.Remove(*post.Image)
		}
		post.Image = &path
	}

	if err := h.blogRepo.Update(post); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update blog post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/blog/:id
// @Summary Delete a blog post and its image
// @Tags blog
// @Security SessionCookie
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /api/blog/{id} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return
	}

	post, err := h.blogRepo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch blog post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	if err := h.blogRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete blog post"})
		return
	}

	if post.Image != nil {
		h.uploads.Remove(*post.Image)
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
