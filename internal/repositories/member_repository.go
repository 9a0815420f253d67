package repositories

import (
	"errors"
	"fmt"

	"github.com/ourkidney/api-backend/internal/models"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for association members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository instance
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create inserts a new member
func (r *MemberRepository) Create(member *models.Member) error {
	if member == nil {
		return fmt.Errorf("member cannot be nil")
	}

	if err := r.db.Create(member).Error; err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	return nil
}

// FindByID retrieves a member by primary key.
// Returns (nil, nil) when the row does not exist.
func (r *MemberRepository) FindByID(id uint) (*models.Member, error) {
	var member models.Member
	if err := r.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find member: %w", err)
	}

	return &member, nil
}

// List retrieves all members in insertion order
func (r *MemberRepository) List() ([]*models.Member, error) {
	var members []*models.Member
	if err := r.db.Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return members, nil
}

// Update saves changed fields of an existing member
func (r *MemberRepository) Update(member *models.Member) error {
	if member == nil {
		return fmt.Errorf("member cannot be nil")
	}

	result := r.db.Model(&models.Member{}).
		Where("id = ?", member.ID).
		Updates(map[string]interface{}{
			"title":    member.Title,
			"name":     member.Name,
			"position": member.Position,
			"type":     member.Type,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update member: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("member not found")
	}

	return nil
}

// Delete removes a member by primary key
func (r *MemberRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Member{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete member: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("member not found")
	}

	return nil
}
