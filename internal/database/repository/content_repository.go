package repository

import (
	"time"

	"github.com/contentflowhq/contentflow-backend/internal/models"
	"gorm.io/gorm"
)

type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Create creates a new content item
func (r *ContentRepository) Create(content *models.Content) error {
	return r.db.Create(content).Error
}

// GetByID retrieves a content item owned by the user
func (r *ContentRepository) GetByID(id, userID string) (*models.Content, error) {
	var content models.Content
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&content).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// GetByUserID retrieves content for a user, newest first, optionally filtered by status
func (r *ContentRepository) GetByUserID(userID, status string, page, pageSize int) ([]*models.Content, int64, error) {
	var items []*models.Content
	var total int64

	query := r.db.Model(&models.Content{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("updated_at DESC").Offset(offset).Limit(pageSize).Find(&items).Error
	return items, total, err
}

// Update updates a content item
func (r *ContentRepository) Update(content *models.Content) error {
	return r.db.Save(content).Error
}

// Delete deletes a content item owned by the user
func (r *ContentRepository) Delete(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Content{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountAll returns the total number of content items across all users
func (r *ContentRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Content{}).Count(&count).Error
	return count, err
}

// CountCreatedSince counts content created at or after the given time
func (r *ContentRepository) CountCreatedSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Content{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
