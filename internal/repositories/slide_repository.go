package repositories

import (
	"errors"
	"fmt"

	"github.com/ourkidney/api-backend/internal/models"
	"gorm.io/gorm"
)

// SlideRepository handles database operations for hero slides
type SlideRepository struct {
	db *gorm.DB
}

// NewSlideRepository creates a new slide repository instance
func NewSlideRepository(db *gorm.DB) *SlideRepository {
	return &SlideRepository{db: db}
}

// Create inserts a new slide
func (r *SlideRepository) Create(slide *models.Slide) error {
	if slide == nil {
		return fmt.Errorf("slide cannot be nil")
	}

	if err := r.db.Create(slide).Error; err != nil {
		return fmt.Errorf("failed to create slide: %w", err)
	}

	return nil
}

// FindByID retrieves a slide by primary key.
// Returns (nil, nil) when the row does not exist.
func (r *SlideRepository) FindByID(id uint) (*models.Slide, error) {
	var slide models.Slide
	if err := r.db.First(&slide, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find slide: %w", err)
	}

	return &slide, nil
}

// List retrieves all slides, newest first
func (r *SlideRepository) List() ([]*models.Slide, error) {
	var slides []*models.Slide
	if err := r.db.Order("created_at DESC").Find(&slides).Error; err != nil {
		return nil, fmt.Errorf("failed to list slides: %w", err)
	}

	return slides, nil
}

// Update saves changed fields of an existing slide
func (r *SlideRepository) Update(slide *models.Slide) error {
	if slide == nil {
		return fmt.Errorf("slide cannot be nil")
	}

	result := r.db.Model(&models.Slide{}).
		Where("id = ?", slide.ID).
		Updates(map[string]interface{}{
			"title":       slide.Title,
			"description": slide.Description,
			"image":       slide.Image,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update slide: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("slide not found")
	}

	return nil
}

// Delete removes a slide by primary key
func (r *SlideRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Slide{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete slide: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("slide not found")
	}

	return nil
}
