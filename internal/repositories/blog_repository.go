package repositories

import (
	"errors"
	"fmt"

	"github.com/ourkidney/api-backend/internal/models"
	"gorm.io/gorm"
)

// BlogRepository handles database operations for blog posts
type BlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository instance
func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// Create inserts a new blog post
func (r *BlogRepository) Create(post *models.BlogPost) error {
	if post == nil {
		return fmt.Errorf("post cannot be nil")
	}

	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}

	return nil
}

// FindByID retrieves a blog post by primary key.
// Returns (nil, nil) when the row does not exist.
func (r *BlogRepository) FindByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find blog post: %w", err)
	}

	return &post, nil
}

// List retrieves all blog posts, newest first
func (r *BlogRepository) List() ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	return posts, nil
}

// Update saves changed fields of an existing blog post
func (r *BlogRepository) Update(post *models.BlogPost) error {
	if post == nil {
		return fmt.Errorf("post cannot be nil")
	}

	result := r.db.Model(&models.BlogPost{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title":   post.Title,
			"content": post.Content,
			"image":   post.Image,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update blog post: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("blog post not found")
	}

	return nil
}

// Delete removes a blog post by primary key
func (r *BlogRepository) Delete(id uint) error {
	result := r.db.Delete(&models.BlogPost{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete blog post: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("blog post not found")
	}

	return nil
}
