package repository

import (
	"github.com/contentflowhq/contentflow-backend/internal/models"
	"gorm.io/gorm"
)

type PublishedContentRepository struct {
	db *gorm.DB
}

func NewPublishedContentRepository(db *gorm.DB) *PublishedContentRepository {
	return &PublishedContentRepository{db: db}
}

// Create records a publish attempt
func (r *PublishedContentRepository) Create(record *models.PublishedContent) error {
	return r.db.Create(record).Error
}

// GetByID retrieves a publish record owned by the user
func (r *PublishedContentRepository) GetByID(id, userID string) (*models.PublishedContent, error) {
	var record models.PublishedContent
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByContentID retrieves publish records for one content item
func (r *PublishedContentRepository) GetByContentID(contentID, userID string) ([]*models.PublishedContent, error) {
	var records []*models.PublishedContent
	err := r.db.Where("content_id = ? AND user_id = ?", contentID, userID).
		Order("created_at DESC").Find(&records).Error
	return records, err
}

// GetByUserID retrieves all publish records for a user, newest first
func (r *PublishedContentRepository) GetByUserID(userID string) ([]*models.PublishedContent, error) {
	var records []*models.PublishedContent
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&records).Error
	return records, err
}

// Update updates a publish record
func (r *PublishedContentRepository) Update(record *models.PublishedContent) error {
	return r.db.Save(record).Error
}
