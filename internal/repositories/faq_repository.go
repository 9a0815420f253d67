package repositories

import (
	"errors"
	"fmt"

	"github.com/ourkidney/api-backend/internal/models"
	"gorm.io/gorm"
)

// FAQRepository handles database operations for FAQ entries
type FAQRepository struct {
	db *gorm.DB
}

// NewFAQRepository creates a new FAQ repository instance
func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

// Create inserts a new FAQ entry
func (r *FAQRepository) Create(faq *models.FAQ) error {
	if faq == nil {
		return fmt.Errorf("faq cannot be nil")
	}

	if err := r.db.Create(faq).Error; err != nil {
		return fmt.Errorf("failed to create faq: %w", err)
	}

	return nil
}

// FindByID retrieves a FAQ entry by primary key.
// Returns (nil, nil) when the row does not exist.
func (r *FAQRepository) FindByID(id uint) (*models.FAQ, error) {
	var faq models.FAQ
	if err := r.db.First(&faq, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find faq: %w", err)
	}

	return &faq, nil
}

// List retrieves all FAQ entries, newest first
func (r *FAQRepository) List() ([]*models.FAQ, error) {
	var faqs []*models.FAQ
	if err := r.db.Order("created_at DESC").Find(&faqs).Error; err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}

	return faqs, nil
}

// Update saves changed fields of an existing FAQ entry
func (r *FAQRepository) Update(faq *models.FAQ) error {
	if faq == nil {
		return fmt.Errorf("faq cannot be nil")
	}

	result := r.db.Model(&models.FAQ{}).
		Where("id = ?", faq.ID).
		Updates(map[string]interface{}{
			"question": faq.Question,
			"answer":   faq.Answer,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update faq: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("faq not found")
	}

	return nil
}

// Delete removes a FAQ entry by primary key
func (r *FAQRepository) Delete(id uint) error {
	result := r.db.Delete(&models.FAQ{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete faq: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("faq not found")
	}

	return nil
}
