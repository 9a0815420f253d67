package repositories

import (
	"errors"
	"fmt"

	"github.com/ourkidney/api-backend/internal/models"
	"gorm.io/gorm"
)

// PartnerRepository handles database operations for partner organisations
type PartnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository creates a new partner repository instance
func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

// Create inserts a new partner
func (r *PartnerRepository) Create(partner *models.Partner) error {
	if partner == nil {
		return fmt.Errorf("partner cannot be nil")
	}

	if err := r.db.Create(partner).Error; err != nil {
		return fmt.Errorf("failed to create partner: %w", err)
	}

	return nil
}

// FindByID retrieves a partner by primary key.
// Returns (nil, nil) when the row does not exist.
func (r *PartnerRepository) FindByID(id uint) (*models.Partner, error) {
	var partner models.Partner
	if err := r.db.First(&partner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find partner: %w", err)
	}

	return &partner, nil
}

// List retrieves all partners, newest first
func (r *PartnerRepository) List() ([]*models.Partner, error) {
	var partners []*models.Partner
	if err := r.db.Order("created_at DESC").Find(&partners).Error; err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}

	return partners, nil
}

// Update saves changed fields of an existing partner
func (r *PartnerRepository) Update(partner *models.Partner) error {
	if partner == nil {
		return fmt.Errorf("partner cannot be nil")
	}

	result := r.db.Model(&models.Partner{}).
		Where("id = ?", partner.ID).
		Updates(map[string]interface{}{
			"name": partner.Name,
			"logo": partner.Logo,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update partner: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("partner not found")
	}

	return nil
}

// Delete removes a partner by primary key
func (r *PartnerRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Partner{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete partner: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("partner not found")
	}

	return nil
}
