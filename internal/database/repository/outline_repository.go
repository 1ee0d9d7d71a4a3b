package repository

import (
	"github.com/contentflowhq/contentflow-backend/internal/models"
	"gorm.io/gorm"
)

type OutlineRepository struct {
	db *gorm.DB
}

func NewOutlineRepository(db *gorm.DB) *OutlineRepository {
	return &OutlineRepository{db: db}
}

// Create creates a new outline
func (r *OutlineRepository) Create(outline *models.Outline) error {
	return r.db.Create(outline).Error
}

// GetByID retrieves an outline owned by the user
func (r *OutlineRepository) GetByID(id, userID string) (*models.Outline, error) {
	var outline models.Outline
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&outline).Error
	if err != nil {
		return nil, err
	}
	return &outline, nil
}

// GetByUserID retrieves outlines for a user, newest first
func (r *OutlineRepository) GetByUserID(userID string) ([]*models.Outline, error) {
	var outlines []*models.Outline
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&outlines).Error
	return outlines, err
}

// Update updates an outline
func (r *OutlineRepository) Update(outline *models.Outline) error {
	return r.db.Save(outline).Error
}

// Delete deletes an outline owned by the user
func (r *OutlineRepository) Delete(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Outline{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
