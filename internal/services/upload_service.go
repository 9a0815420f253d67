package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UploadService stores uploaded images on local disk under a base
// directory that is served statically at /uploads.
type UploadService struct {
	baseDir string
}

// NewUploadService creates the upload service and ensures the base
// directory exists.
func NewUploadService(baseDir string) (*UploadService, error) {
	if baseDir == "" {
		baseDir = "uploads"
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadService{baseDir: baseDir}, nil
}

// Save writes an uploaded file to disk and returns its public path
// ("/uploads/<filename>"). Filenames combine a timestamp with a random
// UUID so concurrent uploads never collide.
func (s *UploadService) Save(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", fmt.Errorf("file is required")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String(), ext)
	fullpath := filepath.Join(s.baseDir, filename)

	dst, err := os.Create(fullpath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullpath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/uploads/" + filename, nil
}

// Remove deletes a previously stored file given its public path.
// Missing files and bad paths are logged and ignored; a leftover file on
// disk is not worth failing the request that replaced it.
func (s *UploadService) Remove(publicPath string) {
	if publicPath == "" {
		return
	}

	filename := strings.TrimPrefix(publicPath, "/uploads/")
	// Refuse anything that escapes the upload directory
	if filename == publicPath || filename != filepath.Base(filename) {
		logrus.WithField("path", publicPath).Warn("Refusing to remove file outside upload directory")
		return
	}

	if err := os.Remove(filepath.Join(s.baseDir, filename)); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("path", publicPath).Warn("Failed to remove uploaded file")
	}
}
