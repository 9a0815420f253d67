package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ourkidney/api-backend/internal/services"
)

// UploadHandler handles standalone image uploads used by admin forms
// that reference images by URL rather than submitting them inline.
type UploadHandler struct {
	uploads *services.UploadService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploads *services.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// UploadResponse is returned after a successful upload
type UploadResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Upload handles POST /api/upload-image
// @Summary Upload an image
// @Tags uploads
// @Security SessionCookie
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} ErrorResponse "No file provided"
// @Router /api/upload-image [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file provided"})
		return
	}

	url, err := h.uploads.Save(file)
	if err != nil {
		logrus.Errorf("Failed to store uploaded image: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store image"})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Success:  true,
		Filename: filepath.Base(url),
		URL:      url,
	})
}
